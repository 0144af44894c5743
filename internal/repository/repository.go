package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository point d'entrée agrégé de tous les repositories
type Repository struct {
	db *gorm.DB

	Compte         CompteRepository
	Stagiaire      StagiaireRepository
	Enseignant     EnseignantRepository
	EtabNationale  EtabNationaleRepository
	EtabRegionale  EtabRegionaleRepository
	EtabFormation  EtabFormationRepository
	Branche        BrancheRepository
	Specialite     SpecialiteRepository
	Module         ModuleRepository
	Grade          GradeRepository
	Diplome        DiplomeRepository
	Mode           ModeFormationRepository
	Offre          OffreRepository
	Cours          CoursRepository
	Memoire        MemoireRepository
	Programme      ProgrammeRepository
	EnsModule      EnsModuleRepository
	Inscription    InscriptionRepository
	SpecialiteEtab SpecialiteEtabRepository
}

// NewRepository construit l'agrégat des repositories
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		Compte:         NewCompteRepo(db),
		Stagiaire:      NewStagiaireRepo(db),
		Enseignant:     NewEnseignantRepo(db),
		EtabNationale:  NewEtabNationaleRepo(db),
		EtabRegionale:  NewEtabRegionaleRepo(db),
		EtabFormation:  NewEtabFormationRepo(db),
		Branche:        NewBrancheRepo(db),
		Specialite:     NewSpecialiteRepo(db),
		Module:         NewModuleRepo(db),
		Grade:          NewGradeRepo(db),
		Diplome:        NewDiplomeRepo(db),
		Mode:           NewModeFormationRepo(db),
		Offre:          NewOffreRepo(db),
		Cours:          NewCoursRepo(db),
		Memoire:        NewMemoireRepo(db),
		Programme:      NewProgrammeRepo(db),
		EnsModule:      NewEnsModuleRepo(db),
		Inscription:    NewInscriptionRepo(db),
		SpecialiteEtab: NewSpecialiteEtabRepo(db),
	}
}

// Transaction exécute fn dans une transaction unique ; l'agrégat passé à fn
// est lié à cette transaction. Les séquences lire-vérifier-écrire des
// workflows (revue de soumission, mise à jour en masse des inscriptions)
// doivent passer par ici pour rester atomiques.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// agrégat de test construit sans base : pas d'atomicité à garantir
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
