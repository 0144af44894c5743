package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Erreurs des établissements ──

var (
	ErrEtablissementIntrouvable = apperr.Introuvable("Etablissement", "établissement inexistant")
	ErrCodeEtablissementExiste  = apperr.Conflit("Etablissement", "code", "code déjà utilisé à ce niveau")
	ErrParentRequis             = apperr.Validation("Etablissement", "id_parent", "établissement parent requis")
	ErrParentIntrouvable        = apperr.Introuvable("Etablissement", "établissement parent inexistant")
	ErrSuppressionNonConfirmee  = apperr.Validation("Etablissement", "confirme", "suppression en cascade non confirmée")
)

// EtablissementService gestion des trois niveaux d'établissements.
// Chaque niveau a son unicité de code ; la suppression d'un régional
// exige une confirmation dès qu'elle emporterait des lignes en cascade.
type EtablissementService interface {
	CreateNationale(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error)
	CreateRegionale(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error)
	CreateFormation(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error)
	GetNationale(ctx context.Context, id string) (*dto.EtablissementResponse, error)
	GetRegionale(ctx context.Context, id string) (*dto.EtablissementResponse, error)
	GetFormation(ctx context.Context, id string) (*dto.EtablissementResponse, error)
	ListNationales(ctx context.Context) ([]dto.EtablissementResponse, error)
	ListRegionales(ctx context.Context, idNationale string) ([]dto.EtablissementResponse, error)
	ListFormations(ctx context.Context, page, pageSize int) ([]dto.EtablissementResponse, int64, error)
	DeleteRegionale(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error)
	DeleteFormation(ctx context.Context, id string) error

	// liaison compte↔profil, un binder par niveau
	BinderNationale() ProfilBinder
	BinderRegionale() ProfilBinder
	BinderFormation() ProfilBinder
}

type etablissementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEtablissementService crée l'EtablissementService
func NewEtablissementService(repo *repository.Repository, logger *zap.Logger) EtablissementService {
	return &etablissementService{repo: repo, logger: logger}
}

func (s *etablissementService) CreateNationale(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error) {
	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.EtabNationale.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeEtablissementExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	etab := &model.EtablissementNationale{
		Code:  code,
		NomFr: strings.TrimSpace(req.NomFr),
		NomAr: strings.TrimSpace(req.NomAr),
	}
	if err := s.repo.EtabNationale.Create(ctx, etab); err != nil {
		s.logger.Error("création de l'établissement national", zap.Error(err))
		return nil, err
	}

	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
	}, nil
}

func (s *etablissementService) CreateRegionale(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error) {
	if req.IDParent == nil {
		return nil, ErrParentRequis
	}
	if _, err := s.repo.EtabNationale.GetByID(ctx, *req.IDParent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.EtabRegionale.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeEtablissementExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	etab := &model.EtablissementRegionale{
		Code:            code,
		NomFr:           strings.TrimSpace(req.NomFr),
		NomAr:           strings.TrimSpace(req.NomAr),
		IDEtabNationale: *req.IDParent,
	}
	if err := s.repo.EtabRegionale.Create(ctx, etab); err != nil {
		s.logger.Error("création de l'établissement régional", zap.Error(err))
		return nil, err
	}

	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
		IDParent: &etab.IDEtabNationale,
	}, nil
}

func (s *etablissementService) CreateFormation(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.EtablissementResponse, error) {
	if req.IDParent == nil {
		return nil, ErrParentRequis
	}
	if _, err := s.repo.EtabRegionale.GetByID(ctx, *req.IDParent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.EtabFormation.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeEtablissementExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	etab := &model.EtablissementFormation{
		Code:            code,
		NomFr:           strings.TrimSpace(req.NomFr),
		NomAr:           strings.TrimSpace(req.NomAr),
		IDEtabRegionale: *req.IDParent,
	}
	if err := s.repo.EtabFormation.Create(ctx, etab); err != nil {
		s.logger.Error("création de l'établissement de formation", zap.Error(err))
		return nil, err
	}

	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
		IDParent: &etab.IDEtabRegionale,
	}, nil
}

func (s *etablissementService) GetNationale(ctx context.Context, id string) (*dto.EtablissementResponse, error) {
	etab, err := s.repo.EtabNationale.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
		IDCompte: etab.IDCompte,
	}, nil
}

func (s *etablissementService) GetRegionale(ctx context.Context, id string) (*dto.EtablissementResponse, error) {
	etab, err := s.repo.EtabRegionale.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
		IDParent: &etab.IDEtabNationale, IDCompte: etab.IDCompte,
	}, nil
}

func (s *etablissementService) GetFormation(ctx context.Context, id string) (*dto.EtablissementResponse, error) {
	etab, err := s.repo.EtabFormation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	return &dto.EtablissementResponse{
		ID: etab.ID, Code: etab.Code, NomFr: etab.NomFr, NomAr: etab.NomAr,
		IDParent: &etab.IDEtabRegionale, IDCompte: etab.IDCompte,
	}, nil
}

func (s *etablissementService) ListNationales(ctx context.Context) ([]dto.EtablissementResponse, error) {
	etabs, err := s.repo.EtabNationale.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EtablissementResponse, 0, len(etabs))
	for i := range etabs {
		e := &etabs[i]
		result = append(result, dto.EtablissementResponse{
			ID: e.ID, Code: e.Code, NomFr: e.NomFr, NomAr: e.NomAr, IDCompte: e.IDCompte,
		})
	}
	return result, nil
}

func (s *etablissementService) ListRegionales(ctx context.Context, idNationale string) ([]dto.EtablissementResponse, error) {
	etabs, err := s.repo.EtabRegionale.ListByNationale(ctx, idNationale)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EtablissementResponse, 0, len(etabs))
	for i := range etabs {
		e := &etabs[i]
		result = append(result, dto.EtablissementResponse{
			ID: e.ID, Code: e.Code, NomFr: e.NomFr, NomAr: e.NomAr,
			IDParent: &e.IDEtabNationale, IDCompte: e.IDCompte,
		})
	}
	return result, nil
}

func (s *etablissementService) ListFormations(ctx context.Context, page, pageSize int) ([]dto.EtablissementResponse, int64, error) {
	offset := (page - 1) * pageSize
	etabs, total, err := s.repo.EtabFormation.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.EtablissementResponse, 0, len(etabs))
	for i := range etabs {
		e := &etabs[i]
		result = append(result, dto.EtablissementResponse{
			ID: e.ID, Code: e.Code, NomFr: e.NomFr, NomAr: e.NomAr,
			IDParent: &e.IDEtabRegionale, IDCompte: e.IDCompte,
		})
	}
	return result, total, nil
}

// DeleteRegionale supprime un établissement régional et tout ce qui en
// dépend. Sans confirmation, elle renvoie un aperçu du nombre de lignes
// qui seraient emportées et ne supprime rien.
func (s *etablissementService) DeleteRegionale(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error) {
	if _, err := s.repo.EtabRegionale.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}

	dependants, err := s.repo.EtabRegionale.CountDependents(ctx, id)
	if err != nil {
		return nil, err
	}

	if dependants > 0 && !confirme {
		return &dto.DeleteNodePreview{Dependants: dependants, Supprime: false}, ErrSuppressionNonConfirmee
	}

	if err := s.repo.EtabRegionale.Delete(ctx, id); err != nil {
		s.logger.Error("suppression de l'établissement régional", zap.Error(err))
		return nil, err
	}

	s.logger.Info("établissement régional supprimé",
		zap.String("id", id), zap.Int64("dependants", dependants))
	return &dto.DeleteNodePreview{Dependants: dependants, Supprime: true}, nil
}

// DeleteFormation supprime un établissement de formation ; ses offres et
// leurs inscriptions suivent en cascade.
func (s *etablissementService) DeleteFormation(ctx context.Context, id string) error {
	if _, err := s.repo.EtabFormation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEtablissementIntrouvable
		}
		return err
	}
	return s.repo.EtabFormation.Delete(ctx, id)
}

// ── Binders compte↔profil par niveau ──

type etabNationaleBinder struct{ repo *repository.Repository }

func (b etabNationaleBinder) GetProfil(ctx context.Context, id string) (model.Profil, error) {
	return b.repo.EtabNationale.GetByID(ctx, id)
}
func (b etabNationaleBinder) ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error) {
	return b.repo.EtabNationale.GetByCompteID(ctx, compteID)
}
func (b etabNationaleBinder) SauvegarderProfil(ctx context.Context, profil model.Profil) error {
	etab, ok := profil.(*model.EtablissementNationale)
	if !ok {
		return ErrProfilIntrouvable
	}
	return b.repo.EtabNationale.Update(ctx, etab)
}

type etabRegionaleBinder struct{ repo *repository.Repository }

func (b etabRegionaleBinder) GetProfil(ctx context.Context, id string) (model.Profil, error) {
	return b.repo.EtabRegionale.GetByID(ctx, id)
}
func (b etabRegionaleBinder) ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error) {
	return b.repo.EtabRegionale.GetByCompteID(ctx, compteID)
}
func (b etabRegionaleBinder) SauvegarderProfil(ctx context.Context, profil model.Profil) error {
	etab, ok := profil.(*model.EtablissementRegionale)
	if !ok {
		return ErrProfilIntrouvable
	}
	return b.repo.EtabRegionale.Update(ctx, etab)
}

type etabFormationBinder struct{ repo *repository.Repository }

func (b etabFormationBinder) GetProfil(ctx context.Context, id string) (model.Profil, error) {
	return b.repo.EtabFormation.GetByID(ctx, id)
}
func (b etabFormationBinder) ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error) {
	return b.repo.EtabFormation.GetByCompteID(ctx, compteID)
}
func (b etabFormationBinder) SauvegarderProfil(ctx context.Context, profil model.Profil) error {
	etab, ok := profil.(*model.EtablissementFormation)
	if !ok {
		return ErrProfilIntrouvable
	}
	return b.repo.EtabFormation.Update(ctx, etab)
}

func (s *etablissementService) BinderNationale() ProfilBinder {
	return etabNationaleBinder{repo: s.repo}
}

func (s *etablissementService) BinderRegionale() ProfilBinder {
	return etabRegionaleBinder{repo: s.repo}
}

func (s *etablissementService) BinderFormation() ProfilBinder {
	return etabFormationBinder{repo: s.repo}
}
