package handler

import "github.com/idrissziadi/stage-sub004/internal/service"

// Handler agrégat de tous les handlers HTTP
type Handler struct {
	Auth          *AuthHandler
	Compte        *CompteHandler
	Stagiaire     *StagiaireHandler
	Enseignant    *EnseignantHandler
	Etablissement *EtablissementHandler
	Hierarchie    *HierarchieHandler
	Referentiel   *ReferentielHandler
	Offre         *OffreHandler
	Cours         *CoursHandler
	Memoire       *MemoireHandler
	Programme     *ProgrammeHandler
	Inscription   *InscriptionHandler
	Affectation   *AffectationHandler
	Export        *ExportHandler
}

// NewHandler construit l'agrégat des handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth, svc.Compte),
		Compte:        NewCompteHandler(svc.Compte),
		Stagiaire:     NewStagiaireHandler(svc.Stagiaire, svc.Compte),
		Enseignant:    NewEnseignantHandler(svc.Enseignant, svc.Compte),
		Etablissement: NewEtablissementHandler(svc.Etablissement, svc.Compte),
		Hierarchie:    NewHierarchieHandler(svc.Hierarchie),
		Referentiel:   NewReferentielHandler(svc.Referentiel),
		Offre:         NewOffreHandler(svc.Offre),
		Cours:         NewCoursHandler(svc.Cours, svc.Enseignant),
		Memoire:       NewMemoireHandler(svc.Memoire, svc.Stagiaire),
		Programme:     NewProgrammeHandler(svc.Programme, svc.Etablissement),
		Inscription:   NewInscriptionHandler(svc.Inscription, svc.Stagiaire),
		Affectation:   NewAffectationHandler(svc.Affectation),
		Export:        NewExportHandler(svc.Export),
	}
}
