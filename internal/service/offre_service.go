package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Erreurs des offres ──

var (
	ErrOffreIntrouvable       = apperr.Introuvable("Offre", "offre inexistante")
	ErrCombinaisonExiste      = apperr.Conflit("Offre", "combinaison", "une offre existe déjà pour cette combinaison")
	ErrDatesIncoherentes      = apperr.Validation("Offre", "date_fin", "la date de fin doit être postérieure à la date de début")
	ErrTransitionOffre        = apperr.Transition("Offre", "transition de statut non admise")
	ErrSpecialiteIntrouvable  = apperr.Introuvable("Specialite", "spécialité inexistante")
	ErrDiplomeIntrouvable     = apperr.Introuvable("Diplome", "diplôme inexistant")
	ErrModeIntrouvable        = apperr.Introuvable("ModeFormation", "mode de formation inexistant")
	ErrLienSpecialiteExiste   = apperr.Conflit("SpecialiteEtab", "paire", "la spécialité est déjà ouverte dans cet établissement")
	ErrLienSpecialiteManquant = apperr.Introuvable("SpecialiteEtab", "lien spécialité-établissement inexistant")
)

// ── Champs dérivés ──
// Calculés à la lecture depuis les enregistrements joints, jamais persistés.
// Fonctions pures : tout affichage d'une offre passe par elles, il ne peut
// donc pas y avoir de dérive entre valeur stockée et valeur calculée.

// DesignationOffre compose la désignation d'une offre à partir de la
// spécialité et du diplôme joints. En arabe, chaque composant retombe
// sur le français quand la désignation arabe est absente.
func DesignationOffre(specialite *model.Specialite, diplome *model.Diplome, langue string) string {
	if specialite == nil || diplome == nil {
		return ""
	}

	sp := specialite.DesignationFr
	di := diplome.DesignationFr
	if langue == "ar" {
		if specialite.DesignationAr != "" {
			sp = specialite.DesignationAr
		}
		if diplome.DesignationAr != "" {
			di = diplome.DesignationAr
		}
	}
	return di + " - " + sp
}

// DureeFormation exprime la durée entre les deux dates de l'offre,
// en mois pleins, ou en jours en dessous de deux mois. Chaîne vide
// quand une borne manque ou que l'intervalle est inversé.
func DureeFormation(debut, fin *time.Time) string {
	if debut == nil || fin == nil || !fin.After(*debut) {
		return ""
	}

	jours := int(fin.Sub(*debut).Hours() / 24)
	mois := jours / 30
	if mois < 2 {
		return fmt.Sprintf("%d jours", jours)
	}
	return fmt.Sprintf("%d mois", mois)
}

// OffreService gestion des offres de formation et des liens
// spécialité-établissement
type OffreService interface {
	Create(ctx context.Context, req *dto.CreateOffreRequest) (*dto.OffreResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OffreResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateOffreRequest) (*dto.OffreResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]dto.OffreResponse, int64, error)
	ListByEtab(ctx context.Context, idEtab string, page, pageSize int) ([]dto.OffreResponse, int64, error)
	Activer(ctx context.Context, id string) (*dto.OffreResponse, error)
	Archiver(ctx context.Context, id string) (*dto.OffreResponse, error)

	OuvrirSpecialite(ctx context.Context, req *dto.CreateSpecialiteEtabRequest) (*dto.SpecialiteEtabResponse, error)
	FermerSpecialite(ctx context.Context, idSpecialite, idEtab string) error
	ListSpecialitesOuvertes(ctx context.Context, idEtab string) ([]dto.SpecialiteEtabResponse, error)
}

type offreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOffreService crée l'OffreService
func NewOffreService(repo *repository.Repository, logger *zap.Logger) OffreService {
	return &offreService{repo: repo, logger: logger}
}

// Create crée une offre en brouillon après vérification des quatre
// références et de l'unicité de la combinaison.
func (s *offreService) Create(ctx context.Context, req *dto.CreateOffreRequest) (*dto.OffreResponse, error) {
	if _, err := s.repo.Specialite.GetByID(ctx, req.IDSpecialite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialiteIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.EtabFormation.GetByID(ctx, req.IDEtabFormation); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Diplome.GetByID(ctx, req.IDDiplome); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiplomeIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Mode.GetByID(ctx, req.IDMode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModeIntrouvable
		}
		return nil, err
	}

	if _, err := s.repo.Offre.GetByCombinaison(ctx, req.IDSpecialite, req.IDEtabFormation, req.IDDiplome, req.IDMode); err == nil {
		return nil, ErrCombinaisonExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	debut, fin, err := parseBornes(req.DateDebut, req.DateFin)
	if err != nil {
		return nil, err
	}

	offre := &model.Offre{
		IDSpecialite:    req.IDSpecialite,
		IDEtabFormation: req.IDEtabFormation,
		IDDiplome:       req.IDDiplome,
		IDMode:          req.IDMode,
		DateDebut:       debut,
		DateFin:         fin,
		Statut:          model.OffreBrouillon,
	}
	if err := s.repo.Offre.Create(ctx, offre); err != nil {
		s.logger.Error("création de l'offre", zap.Error(err))
		return nil, err
	}

	// relecture avec associations pour les champs dérivés
	return s.GetByID(ctx, offre.ID)
}

func (s *offreService) GetByID(ctx context.Context, id string) (*dto.OffreResponse, error) {
	offre, err := s.repo.Offre.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOffreIntrouvable
		}
		return nil, err
	}
	resp := s.toResponse(offre)
	return &resp, nil
}

// Update ajuste les dates ; l'invariant date_fin > date_debut est
// revérifié sur le couple résultant.
func (s *offreService) Update(ctx context.Context, id string, req *dto.UpdateOffreRequest) (*dto.OffreResponse, error) {
	offre, err := s.repo.Offre.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOffreIntrouvable
		}
		return nil, err
	}

	if req.DateDebut != nil {
		if *req.DateDebut == "" {
			offre.DateDebut = nil
		} else {
			d, err := ParseDate(*req.DateDebut)
			if err != nil {
				return nil, ErrDateInvalide
			}
			offre.DateDebut = &d
		}
	}
	if req.DateFin != nil {
		if *req.DateFin == "" {
			offre.DateFin = nil
		} else {
			d, err := ParseDate(*req.DateFin)
			if err != nil {
				return nil, ErrDateInvalide
			}
			offre.DateFin = &d
		}
	}

	if offre.DateDebut != nil && offre.DateFin != nil && !offre.DateFin.After(*offre.DateDebut) {
		return nil, ErrDatesIncoherentes
	}

	if err := s.repo.Offre.Update(ctx, offre); err != nil {
		return nil, err
	}

	resp := s.toResponse(offre)
	return &resp, nil
}

// Delete supprime l'offre ; ses inscriptions suivent en cascade.
func (s *offreService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Offre.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOffreIntrouvable
		}
		return err
	}
	return s.repo.Offre.Delete(ctx, id)
}

func (s *offreService) List(ctx context.Context, page, pageSize int) ([]dto.OffreResponse, int64, error) {
	offset := (page - 1) * pageSize
	offres, total, err := s.repo.Offre.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(offres), total, nil
}

func (s *offreService) ListByEtab(ctx context.Context, idEtab string, page, pageSize int) ([]dto.OffreResponse, int64, error) {
	offset := (page - 1) * pageSize
	offres, total, err := s.repo.Offre.ListByEtab(ctx, idEtab, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(offres), total, nil
}

// Activer fait passer l'offre de brouillon à active
func (s *offreService) Activer(ctx context.Context, id string) (*dto.OffreResponse, error) {
	return s.transitionner(ctx, id, model.OffreActive)
}

// Archiver fait passer l'offre d'active à archivée. Le cycle est
// linéaire : pas de retour en arrière.
func (s *offreService) Archiver(ctx context.Context, id string) (*dto.OffreResponse, error) {
	return s.transitionner(ctx, id, model.OffreArchivee)
}

func (s *offreService) transitionner(ctx context.Context, id, cible string) (*dto.OffreResponse, error) {
	offre, err := s.repo.Offre.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOffreIntrouvable
		}
		return nil, err
	}

	if model.OffreTransitions[offre.Statut] != cible {
		return nil, ErrTransitionOffre
	}

	ancien := offre.Statut
	offre.Statut = cible
	if err := s.repo.Offre.Update(ctx, offre); err != nil {
		return nil, err
	}

	s.logger.Info("statut de l'offre modifié",
		zap.String("id", id), zap.String("ancien", ancien), zap.String("nouveau", cible))

	resp := s.toResponse(offre)
	return &resp, nil
}

// ── Liens spécialité-établissement ──

// OuvrirSpecialite ouvre une spécialité dans un établissement de formation
func (s *offreService) OuvrirSpecialite(ctx context.Context, req *dto.CreateSpecialiteEtabRequest) (*dto.SpecialiteEtabResponse, error) {
	if _, err := s.repo.Specialite.GetByID(ctx, req.IDSpecialite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialiteIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.EtabFormation.GetByID(ctx, req.IDEtabFormation); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}

	if _, err := s.repo.SpecialiteEtab.GetByPaire(ctx, req.IDSpecialite, req.IDEtabFormation); err == nil {
		return nil, ErrLienSpecialiteExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lien := &model.SpecialiteEtab{
		IDSpecialite:    req.IDSpecialite,
		IDEtabFormation: req.IDEtabFormation,
		Actif:           true,
	}
	if req.DateOuverture != nil && *req.DateOuverture != "" {
		d, err := ParseDate(*req.DateOuverture)
		if err != nil {
			return nil, ErrDateInvalide
		}
		lien.DateOuverture = &d
	} else {
		now := time.Now()
		lien.DateOuverture = &now
	}

	if err := s.repo.SpecialiteEtab.Create(ctx, lien); err != nil {
		s.logger.Error("ouverture de la spécialité", zap.Error(err))
		return nil, err
	}

	resp := toSpecialiteEtabResponse(lien)
	return &resp, nil
}

// FermerSpecialite retire le lien spécialité-établissement
func (s *offreService) FermerSpecialite(ctx context.Context, idSpecialite, idEtab string) error {
	lien, err := s.repo.SpecialiteEtab.GetByPaire(ctx, idSpecialite, idEtab)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLienSpecialiteManquant
		}
		return err
	}
	return s.repo.SpecialiteEtab.Delete(ctx, lien.ID)
}

func (s *offreService) ListSpecialitesOuvertes(ctx context.Context, idEtab string) ([]dto.SpecialiteEtabResponse, error) {
	liens, err := s.repo.SpecialiteEtab.ListByEtab(ctx, idEtab)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SpecialiteEtabResponse, 0, len(liens))
	for i := range liens {
		result = append(result, toSpecialiteEtabResponse(&liens[i]))
	}
	return result, nil
}

// ── Conversions ──

func (s *offreService) toResponse(offre *model.Offre) dto.OffreResponse {
	resp := dto.OffreResponse{
		ID:              offre.ID,
		IDSpecialite:    offre.IDSpecialite,
		IDEtabFormation: offre.IDEtabFormation,
		IDDiplome:       offre.IDDiplome,
		IDMode:          offre.IDMode,
		Statut:          offre.Statut,
		DesignationFr:   DesignationOffre(offre.Specialite, offre.Diplome, "fr"),
		DesignationAr:   DesignationOffre(offre.Specialite, offre.Diplome, "ar"),
		DureeFormation:  DureeFormation(offre.DateDebut, offre.DateFin),
	}
	if offre.DateDebut != nil {
		resp.DateDebut = FormatDate(*offre.DateDebut)
	}
	if offre.DateFin != nil {
		resp.DateFin = FormatDate(*offre.DateFin)
	}
	if offre.Specialite != nil {
		resp.Specialite = &dto.NodeResponse{
			ID: offre.Specialite.ID, Code: offre.Specialite.Code,
			DesignationFr: offre.Specialite.DesignationFr,
			DesignationAr: offre.Specialite.DesignationAr,
			IDParent:      offre.Specialite.IDBranche,
		}
	}
	if offre.Diplome != nil {
		resp.Diplome = &dto.ReferentielResponse{
			ID: offre.Diplome.ID, Code: offre.Diplome.Code,
			DesignationFr: offre.Diplome.DesignationFr,
			DesignationAr: offre.Diplome.DesignationAr,
		}
	}
	if offre.Mode != nil {
		resp.Mode = &dto.ReferentielResponse{
			ID: offre.Mode.ID, Code: offre.Mode.Code,
			DesignationFr: offre.Mode.DesignationFr,
			DesignationAr: offre.Mode.DesignationAr,
		}
	}
	return resp
}

func (s *offreService) toResponses(offres []model.Offre) []dto.OffreResponse {
	result := make([]dto.OffreResponse, 0, len(offres))
	for i := range offres {
		result = append(result, s.toResponse(&offres[i]))
	}
	return result
}

func toSpecialiteEtabResponse(lien *model.SpecialiteEtab) dto.SpecialiteEtabResponse {
	resp := dto.SpecialiteEtabResponse{
		ID:              lien.ID,
		IDSpecialite:    lien.IDSpecialite,
		IDEtabFormation: lien.IDEtabFormation,
		Actif:           lien.Actif,
	}
	if lien.DateOuverture != nil {
		resp.DateOuverture = FormatDate(*lien.DateOuverture)
	}
	return resp
}

// parseBornes analyse le couple de dates optionnel d'une offre et
// vérifie l'ordre quand les deux bornes sont présentes.
func parseBornes(debut, fin *string) (*time.Time, *time.Time, error) {
	var d, f *time.Time
	if debut != nil && *debut != "" {
		t, err := ParseDate(*debut)
		if err != nil {
			return nil, nil, ErrDateInvalide
		}
		d = &t
	}
	if fin != nil && *fin != "" {
		t, err := ParseDate(*fin)
		if err != nil {
			return nil, nil, ErrDateInvalide
		}
		f = &t
	}
	if d != nil && f != nil && !f.After(*d) {
		return nil, nil, ErrDatesIncoherentes
	}
	return d, f, nil
}
