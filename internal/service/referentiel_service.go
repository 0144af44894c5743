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

var (
	ErrReferentielIntrouvable = apperr.Introuvable("Referentiel", "entrée de référentiel inexistante")
	ErrCodeReferentielExiste  = apperr.Conflit("Referentiel", "code", "code déjà utilisé dans ce référentiel")
)

// ReferentielService gestion des trois référentiels plats : grades,
// diplômes et modes de formation. L'unicité des codes est propre à
// chaque référentiel.
type ReferentielService interface {
	CreateGrade(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error)
	CreateDiplome(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error)
	CreateMode(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error)
	UpdateGrade(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error)
	UpdateDiplome(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error)
	UpdateMode(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error)
	DeleteGrade(ctx context.Context, id string) error
	DeleteDiplome(ctx context.Context, id string) error
	DeleteMode(ctx context.Context, id string) error
	ListGrades(ctx context.Context) ([]dto.ReferentielResponse, error)
	ListDiplomes(ctx context.Context) ([]dto.ReferentielResponse, error)
	ListModes(ctx context.Context) ([]dto.ReferentielResponse, error)
}

type referentielService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReferentielService crée le ReferentielService
func NewReferentielService(repo *repository.Repository, logger *zap.Logger) ReferentielService {
	return &referentielService{repo: repo, logger: logger}
}

// ── Grades ──

func (s *referentielService) CreateGrade(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error) {
	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Grade.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeReferentielExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	grade := &model.Grade{
		Code:          code,
		DesignationFr: strings.TrimSpace(req.DesignationFr),
		DesignationAr: strings.TrimSpace(req.DesignationAr),
	}
	if err := s.repo.Grade.Create(ctx, grade); err != nil {
		s.logger.Error("création du grade", zap.Error(err))
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: grade.ID, Code: grade.Code,
		DesignationFr: grade.DesignationFr, DesignationAr: grade.DesignationAr,
	}, nil
}

func (s *referentielService) UpdateGrade(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error) {
	grade, err := s.repo.Grade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferentielIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != grade.Code {
			if _, err := s.repo.Grade.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeReferentielExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			grade.Code = code
		}
	}
	if req.DesignationFr != nil {
		grade.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		grade.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Grade.Update(ctx, grade); err != nil {
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: grade.ID, Code: grade.Code,
		DesignationFr: grade.DesignationFr, DesignationAr: grade.DesignationAr,
	}, nil
}

// DeleteGrade supprime le grade ; les enseignants qui le portaient
// suivent en cascade, comme tout le graphe sous eux.
func (s *referentielService) DeleteGrade(ctx context.Context, id string) error {
	if _, err := s.repo.Grade.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferentielIntrouvable
		}
		return err
	}
	return s.repo.Grade.Delete(ctx, id)
}

func (s *referentielService) ListGrades(ctx context.Context) ([]dto.ReferentielResponse, error) {
	grades, err := s.repo.Grade.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReferentielResponse, 0, len(grades))
	for i := range grades {
		g := &grades[i]
		result = append(result, dto.ReferentielResponse{
			ID: g.ID, Code: g.Code,
			DesignationFr: g.DesignationFr, DesignationAr: g.DesignationAr,
		})
	}
	return result, nil
}

// ── Diplômes ──

func (s *referentielService) CreateDiplome(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error) {
	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Diplome.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeReferentielExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	diplome := &model.Diplome{
		Code:          code,
		DesignationFr: strings.TrimSpace(req.DesignationFr),
		DesignationAr: strings.TrimSpace(req.DesignationAr),
	}
	if err := s.repo.Diplome.Create(ctx, diplome); err != nil {
		s.logger.Error("création du diplôme", zap.Error(err))
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: diplome.ID, Code: diplome.Code,
		DesignationFr: diplome.DesignationFr, DesignationAr: diplome.DesignationAr,
	}, nil
}

func (s *referentielService) UpdateDiplome(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error) {
	diplome, err := s.repo.Diplome.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferentielIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != diplome.Code {
			if _, err := s.repo.Diplome.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeReferentielExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			diplome.Code = code
		}
	}
	if req.DesignationFr != nil {
		diplome.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		diplome.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Diplome.Update(ctx, diplome); err != nil {
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: diplome.ID, Code: diplome.Code,
		DesignationFr: diplome.DesignationFr, DesignationAr: diplome.DesignationAr,
	}, nil
}

func (s *referentielService) DeleteDiplome(ctx context.Context, id string) error {
	if _, err := s.repo.Diplome.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferentielIntrouvable
		}
		return err
	}
	return s.repo.Diplome.Delete(ctx, id)
}

func (s *referentielService) ListDiplomes(ctx context.Context) ([]dto.ReferentielResponse, error) {
	diplomes, err := s.repo.Diplome.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReferentielResponse, 0, len(diplomes))
	for i := range diplomes {
		d := &diplomes[i]
		result = append(result, dto.ReferentielResponse{
			ID: d.ID, Code: d.Code,
			DesignationFr: d.DesignationFr, DesignationAr: d.DesignationAr,
		})
	}
	return result, nil
}

// ── Modes de formation ──

func (s *referentielService) CreateMode(ctx context.Context, req *dto.CreateReferentielRequest) (*dto.ReferentielResponse, error) {
	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Mode.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeReferentielExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mode := &model.ModeFormation{
		Code:          code,
		DesignationFr: strings.TrimSpace(req.DesignationFr),
		DesignationAr: strings.TrimSpace(req.DesignationAr),
	}
	if err := s.repo.Mode.Create(ctx, mode); err != nil {
		s.logger.Error("création du mode de formation", zap.Error(err))
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: mode.ID, Code: mode.Code,
		DesignationFr: mode.DesignationFr, DesignationAr: mode.DesignationAr,
	}, nil
}

func (s *referentielService) UpdateMode(ctx context.Context, id string, req *dto.UpdateReferentielRequest) (*dto.ReferentielResponse, error) {
	mode, err := s.repo.Mode.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferentielIntrouvable
		}
		return nil, err
	}

	if req.Code != nil {
		code, err := NormaliserCodeValide(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != mode.Code {
			if _, err := s.repo.Mode.GetByCode(ctx, code); err == nil {
				return nil, ErrCodeReferentielExiste
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			mode.Code = code
		}
	}
	if req.DesignationFr != nil {
		mode.DesignationFr = strings.TrimSpace(*req.DesignationFr)
	}
	if req.DesignationAr != nil {
		mode.DesignationAr = strings.TrimSpace(*req.DesignationAr)
	}

	if err := s.repo.Mode.Update(ctx, mode); err != nil {
		return nil, err
	}
	return &dto.ReferentielResponse{
		ID: mode.ID, Code: mode.Code,
		DesignationFr: mode.DesignationFr, DesignationAr: mode.DesignationAr,
	}, nil
}

func (s *referentielService) DeleteMode(ctx context.Context, id string) error {
	if _, err := s.repo.Mode.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferentielIntrouvable
		}
		return err
	}
	return s.repo.Mode.Delete(ctx, id)
}

func (s *referentielService) ListModes(ctx context.Context) ([]dto.ReferentielResponse, error) {
	modes, err := s.repo.Mode.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReferentielResponse, 0, len(modes))
	for i := range modes {
		m := &modes[i]
		result = append(result, dto.ReferentielResponse{
			ID: m.ID, Code: m.Code,
			DesignationFr: m.DesignationFr, DesignationAr: m.DesignationAr,
		})
	}
	return result, nil
}
