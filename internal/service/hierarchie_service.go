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

// ── Erreurs de la hiérarchie académique ──

var (
	ErrNoeudIntrouvable = apperr.Introuvable("Hierarchie", "nœud inexistant")
	ErrCodeNoeudExiste  = apperr.Conflit("Hierarchie", "code", "code déjà utilisé à ce niveau")
)

// HierarchieService gestion de la hiérarchie Branche ⊃ Spécialité ⊃ Module.
// L'unicité des codes est propre à chaque niveau : une branche et un module
// peuvent porter le même code. La suppression d'un nœud cascade sur tous
// ses descendants ; elle exige une confirmation dès qu'au moins une ligne
// dépendante serait emportée.
type HierarchieService interface {
	CreateBranche(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error)
	CreateSpecialite(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error)
	CreateModule(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error)
	UpdateBranche(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error)
	UpdateSpecialite(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error)
	UpdateModule(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error)
	DeleteBranche(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error)
	DeleteSpecialite(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error)
	DeleteModule(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error)
	ListBranches(ctx context.Context, idEtabRegionale string) ([]dto.NodeResponse, error)
	ListSpecialites(ctx context.Context, idBranche string) ([]dto.NodeResponse, error)
	ListModules(ctx context.Context, idSpecialite string) ([]dto.NodeResponse, error)
}

type hierarchieService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHierarchieService crée le HierarchieService
func NewHierarchieService(repo *repository.Repository, logger *zap.Logger) HierarchieService {
	return &hierarchieService{repo: repo, logger: logger}
}

// ── Création ──

func (s *hierarchieService) CreateBranche(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	if _, err := s.repo.EtabRegionale.GetByID(ctx, req.IDParent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Branche.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeNoeudExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	branche := &model.Branche{
		Code:            code,
		DesignationFr:   strings.TrimSpace(req.DesignationFr),
		DesignationAr:   strings.TrimSpace(req.DesignationAr),
		IDEtabRegionale: req.IDParent,
	}
	if err := s.repo.Branche.Create(ctx, branche); err != nil {
		s.logger.Error("création de la branche", zap.Error(err))
		return nil, err
	}

	return &dto.NodeResponse{
		ID: branche.ID, Code: branche.Code,
		DesignationFr: branche.DesignationFr, DesignationAr: branche.DesignationAr,
		IDParent: branche.IDEtabRegionale,
	}, nil
}

func (s *hierarchieService) CreateSpecialite(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	if _, err := s.repo.Branche.GetByID(ctx, req.IDParent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Specialite.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeNoeudExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	specialite := &model.Specialite{
		Code:          code,
		DesignationFr: strings.TrimSpace(req.DesignationFr),
		DesignationAr: strings.TrimSpace(req.DesignationAr),
		IDBranche:     req.IDParent,
	}
	if err := s.repo.Specialite.Create(ctx, specialite); err != nil {
		s.logger.Error("création de la spécialité", zap.Error(err))
		return nil, err
	}

	return &dto.NodeResponse{
		ID: specialite.ID, Code: specialite.Code,
		DesignationFr: specialite.DesignationFr, DesignationAr: specialite.DesignationAr,
		IDParent: specialite.IDBranche,
	}, nil
}

func (s *hierarchieService) CreateModule(ctx context.Context, req *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	if _, err := s.repo.Specialite.GetByID(ctx, req.IDParent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Module.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeNoeudExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	module := &model.Module{
		Code:          code,
		DesignationFr: strings.TrimSpace(req.DesignationFr),
		DesignationAr: strings.TrimSpace(req.DesignationAr),
		IDSpecialite:  req.IDParent,
	}
	if err := s.repo.Module.Create(ctx, module); err != nil {
		s.logger.Error("création du module", zap.Error(err))
		return nil, err
	}

	return &dto.NodeResponse{
		ID: module.ID, Code: module.Code,
		DesignationFr: module.DesignationFr, DesignationAr: module.DesignationAr,
		IDParent: module.IDSpecialite,
	}, nil
}

// ── Mise à jour ──

func (s *hierarchieService) UpdateBranche(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	branche, err := s.repo.Branche.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != branche.Code {
			if _, err := s.repo.Branche.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeNoeudExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			branche.Code = code
		}
	}
	if req.DesignationFr != nil {
		branche.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		branche.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Branche.Update(ctx, branche); err != nil {
		return nil, err
	}

	return &dto.NodeResponse{
		ID: branche.ID, Code: branche.Code,
		DesignationFr: branche.DesignationFr, DesignationAr: branche.DesignationAr,
		IDParent: branche.IDEtabRegionale,
	}, nil
}

func (s *hierarchieService) UpdateSpecialite(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	specialite, err := s.repo.Specialite.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != specialite.Code {
			if _, err := s.repo.Specialite.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeNoeudExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			specialite.Code = code
		}
	}
	if req.DesignationFr != nil {
		specialite.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		specialite.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Specialite.Update(ctx, specialite); err != nil {
		return nil, err
	}

	return &dto.NodeResponse{
		ID: specialite.ID, Code: specialite.Code,
		DesignationFr: specialite.DesignationFr, DesignationAr: specialite.DesignationAr,
		IDParent: specialite.IDBranche,
	}, nil
}

func (s *hierarchieService) UpdateModule(ctx context.Context, id string, req *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	module, err := s.repo.Module.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != module.Code {
			if _, err := s.repo.Module.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeNoeudExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			module.Code = code
		}
	}
	if req.DesignationFr != nil {
		module.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		module.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Module.Update(ctx, module); err != nil {
		return nil, err
	}

	return &dto.NodeResponse{
		ID: module.ID, Code: module.Code,
		DesignationFr: module.DesignationFr, DesignationAr: module.DesignationAr,
		IDParent: module.IDSpecialite,
	}, nil
}

// ── Suppression avec confirmation ──

func (s *hierarchieService) DeleteBranche(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error) {
	if _, err := s.repo.Branche.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}
	return s.supprimerAvecApercu(ctx, id, confirme,
		s.repo.Branche.CountDependents, s.repo.Branche.Delete, "branche")
}

func (s *hierarchieService) DeleteSpecialite(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error) {
	if _, err := s.repo.Specialite.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}
	return s.supprimerAvecApercu(ctx, id, confirme,
		s.repo.Specialite.CountDependents, s.repo.Specialite.Delete, "spécialité")
}

func (s *hierarchieService) DeleteModule(ctx context.Context, id string, confirme bool) (*dto.DeleteNodePreview, error) {
	if _, err := s.repo.Module.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoeudIntrouvable
		}
		return nil, err
	}
	return s.supprimerAvecApercu(ctx, id, confirme,
		s.repo.Module.CountDependents, s.repo.Module.Delete, "module")
}

// supprimerAvecApercu factorise la règle de confirmation : dénombrer les
// dépendants, refuser sans confirmation dès qu'il y en a, supprimer sinon.
func (s *hierarchieService) supprimerAvecApercu(
	ctx context.Context,
	id string,
	confirme bool,
	compter func(context.Context, string) (int64, error),
	supprimer func(context.Context, string) error,
	niveau string,
) (*dto.DeleteNodePreview, error) {
	dependants, err := compter(ctx, id)
	if err != nil {
		return nil, err
	}

	if dependants > 0 && !confirme {
		return &dto.DeleteNodePreview{Dependants: dependants, Supprime: false}, ErrSuppressionNonConfirmee
	}

	if err := supprimer(ctx, id); err != nil {
		s.logger.Error("suppression du nœud",
			zap.String("niveau", niveau), zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("nœud supprimé",
		zap.String("niveau", niveau), zap.String("id", id), zap.Int64("dependants", dependants))
	return &dto.DeleteNodePreview{Dependants: dependants, Supprime: true}, nil
}

// ── Listes ──

func (s *hierarchieService) ListBranches(ctx context.Context, idEtabRegionale string) ([]dto.NodeResponse, error) {
	branches, err := s.repo.Branche.ListByEtabRegionale(ctx, idEtabRegionale)
	if err != nil {
		return nil, err
	}
	result := make([]dto.NodeResponse, 0, len(branches))
	for i := range branches {
		b := &branches[i]
		result = append(result, dto.NodeResponse{
			ID: b.ID, Code: b.Code,
			DesignationFr: b.DesignationFr, DesignationAr: b.DesignationAr,
			IDParent: b.IDEtabRegionale,
		})
	}
	return result, nil
}

func (s *hierarchieService) ListSpecialites(ctx context.Context, idBranche string) ([]dto.NodeResponse, error) {
	specialites, err := s.repo.Specialite.ListByBranche(ctx, idBranche)
	if err != nil {
		return nil, err
	}
	result := make([]dto.NodeResponse, 0, len(specialites))
	for i := range specialites {
		sp := &specialites[i]
		result = append(result, dto.NodeResponse{
			ID: sp.ID, Code: sp.Code,
			DesignationFr: sp.DesignationFr, DesignationAr: sp.DesignationAr,
			IDParent: sp.IDBranche,
		})
	}
	return result, nil
}

func (s *hierarchieService) ListModules(ctx context.Context, idSpecialite string) ([]dto.NodeResponse, error) {
	modules, err := s.repo.Module.ListBySpecialite(ctx, idSpecialite)
	if err != nil {
		return nil, err
	}
	result := make([]dto.NodeResponse, 0, len(modules))
	for i := range modules {
		m := &modules[i]
		result = append(result, dto.NodeResponse{
			ID: m.ID, Code: m.Code,
			DesignationFr: m.DesignationFr, DesignationAr: m.DesignationAr,
			IDParent: m.IDSpecialite,
		})
	}
	return result, nil
}
