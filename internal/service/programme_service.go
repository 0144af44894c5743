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
	ErrProgrammeIntrouvable = apperr.Introuvable("Programme", "programme inexistant")
	ErrCodeProgrammeExiste  = apperr.Conflit("Programme", "code", "code de programme déjà utilisé")
)

// ProgrammeService dépôt des programmes pédagogiques par les
// établissements régionaux et revue au niveau national
type ProgrammeService interface {
	Deposer(ctx context.Context, idEtabRegionale string, req *dto.CreateProgrammeRequest) (*dto.SoumissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error)
	Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error)
	Delete(ctx context.Context, id string) error
	ListByEtabRegionale(ctx context.Context, idEtab string) ([]dto.SoumissionResponse, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error)
}

type programmeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgrammeService crée le ProgrammeService
func NewProgrammeService(repo *repository.Repository, logger *zap.Logger) ProgrammeService {
	return &programmeService{repo: repo, logger: logger}
}

func (s *programmeService) Deposer(ctx context.Context, idEtabRegionale string, req *dto.CreateProgrammeRequest) (*dto.SoumissionResponse, error) {
	if err := verifierFichierPDF(req.FichierPDF); err != nil {
		return nil, err
	}

	if _, err := s.repo.EtabRegionale.GetByID(ctx, idEtabRegionale); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEtablissementIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Module.GetByID(ctx, req.IDModule); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleIntrouvable
		}
		return nil, err
	}

	code, err := NormaliserCodeValide(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Programme.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeProgrammeExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	programme := &model.Programme{
		Code:            code,
		TitreFr:         strings.TrimSpace(req.TitreFr),
		TitreAr:         strings.TrimSpace(req.TitreAr),
		FichierPDF:      strings.TrimSpace(req.FichierPDF),
		Status:          model.CoursEnAttente,
		IDModule:        req.IDModule,
		IDEtabRegionale: idEtabRegionale,
	}
	if err := s.repo.Programme.Create(ctx, programme); err != nil {
		s.logger.Error("dépôt du programme", zap.Error(err))
		return nil, err
	}

	resp := toProgrammeResponse(programme)
	return &resp, nil
}

func (s *programmeService) GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error) {
	programme, err := s.repo.Programme.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgrammeIntrouvable
		}
		return nil, err
	}
	resp := toProgrammeResponse(programme)
	return &resp, nil
}

// Revoir applique la décision du niveau national dans une transaction
func (s *programmeService) Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error) {
	nouveau, err := deciderStatut(req, model.CoursValide, model.CoursRefuse)
	if err != nil {
		return nil, nil, err
	}

	var programme *model.Programme
	var event *dto.TransitionEvent

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		p, err := tx.Programme.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgrammeIntrouvable
			}
			return err
		}
		if p.Status != model.CoursEnAttente {
			return ErrDejaRevue
		}

		ancien := p.Status
		p.Status = nouveau
		p.Observation = strings.TrimSpace(req.Observation)
		if err := tx.Programme.Update(ctx, p); err != nil {
			return err
		}

		programme = p
		event = &dto.TransitionEvent{
			Entite: "Programme", ID: p.ID,
			AncienStatut: ancien, NouveauStatut: nouveau,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("programme revu",
		zap.String("id", id), zap.String("statut", nouveau))

	resp := toProgrammeResponse(programme)
	return &resp, event, nil
}

func (s *programmeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Programme.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgrammeIntrouvable
		}
		return err
	}
	return s.repo.Programme.Delete(ctx, id)
}

func (s *programmeService) ListByEtabRegionale(ctx context.Context, idEtab string) ([]dto.SoumissionResponse, error) {
	programmes, err := s.repo.Programme.ListByEtabRegionale(ctx, idEtab)
	if err != nil {
		return nil, err
	}
	return toProgrammeResponses(programmes), nil
}

func (s *programmeService) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error) {
	offset := (page - 1) * pageSize
	programmes, total, err := s.repo.Programme.ListByStatus(ctx, status, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return toProgrammeResponses(programmes), total, nil
}

func toProgrammeResponse(p *model.Programme) dto.SoumissionResponse {
	return dto.SoumissionResponse{
		ID:          p.ID,
		Code:        p.Code,
		TitreFr:     p.TitreFr,
		TitreAr:     p.TitreAr,
		FichierPDF:  p.FichierPDF,
		Status:      p.Status,
		Observation: p.Observation,
		IDAuteur:    p.IDEtabRegionale,
		IDCible:     p.IDModule,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toProgrammeResponses(programmes []model.Programme) []dto.SoumissionResponse {
	result := make([]dto.SoumissionResponse, 0, len(programmes))
	for i := range programmes {
		result = append(result, toProgrammeResponse(&programmes[i]))
	}
	return result
}
