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
	ErrCoursIntrouvable  = apperr.Introuvable("Cours", "cours inexistant")
	ErrCodeCoursExiste   = apperr.Conflit("Cours", "code", "code de cours déjà utilisé")
	ErrModuleIntrouvable = apperr.Introuvable("Module", "module inexistant")
)

// CoursService dépôt et revue des supports de cours
type CoursService interface {
	Deposer(ctx context.Context, idEnseignant string, req *dto.CreateCoursRequest) (*dto.SoumissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error)
	Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error)
	Delete(ctx context.Context, id string) error
	ListByModule(ctx context.Context, idModule string) ([]dto.SoumissionResponse, error)
	ListByEnseignant(ctx context.Context, idEnseignant string) ([]dto.SoumissionResponse, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error)
}

type coursService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCoursService crée le CoursService
func NewCoursService(repo *repository.Repository, logger *zap.Logger) CoursService {
	return &coursService{repo: repo, logger: logger}
}

// Deposer enregistre un cours en attente de revue. Le statut initial est
// forcé quel que soit l'appelant ; l'observation reste vide jusqu'à la revue.
func (s *coursService) Deposer(ctx context.Context, idEnseignant string, req *dto.CreateCoursRequest) (*dto.SoumissionResponse, error) {
	if err := verifierFichierPDF(req.FichierPDF); err != nil {
		return nil, err
	}

	if _, err := s.repo.Enseignant.GetByID(ctx, idEnseignant); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnseignantIntrouvable
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
	if _, err := s.repo.Cours.GetByCode(ctx, code); err == nil {
		return nil, ErrCodeCoursExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cours := &model.Cours{
		Code:         code,
		TitreFr:      strings.TrimSpace(req.TitreFr),
		TitreAr:      strings.TrimSpace(req.TitreAr),
		FichierPDF:   strings.TrimSpace(req.FichierPDF),
		Status:       model.CoursEnAttente,
		IDModule:     req.IDModule,
		IDEnseignant: idEnseignant,
	}
	if err := s.repo.Cours.Create(ctx, cours); err != nil {
		s.logger.Error("dépôt du cours", zap.Error(err))
		return nil, err
	}

	resp := toCoursResponse(cours)
	return &resp, nil
}

func (s *coursService) GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error) {
	cours, err := s.repo.Cours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoursIntrouvable
		}
		return nil, err
	}
	resp := toCoursResponse(cours)
	return &resp, nil
}

// Revoir applique la décision de validation. La séquence lire-vérifier-écrire
// s'exécute dans une transaction : une seule revue peut gagner, les suivantes
// échouent sur l'état terminal.
func (s *coursService) Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error) {
	nouveau, err := deciderStatut(req, model.CoursValide, model.CoursRefuse)
	if err != nil {
		return nil, nil, err
	}

	var cours *model.Cours
	var event *dto.TransitionEvent

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		c, err := tx.Cours.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCoursIntrouvable
			}
			return err
		}
		if c.Status != model.CoursEnAttente {
			return ErrDejaRevue
		}

		ancien := c.Status
		c.Status = nouveau
		c.Observation = strings.TrimSpace(req.Observation)
		if err := tx.Cours.Update(ctx, c); err != nil {
			return err
		}

		cours = c
		event = &dto.TransitionEvent{
			Entite: "Cours", ID: c.ID,
			AncienStatut: ancien, NouveauStatut: nouveau,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("cours revu",
		zap.String("id", id), zap.String("statut", nouveau))

	resp := toCoursResponse(cours)
	return &resp, event, nil
}

func (s *coursService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Cours.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCoursIntrouvable
		}
		return err
	}
	return s.repo.Cours.Delete(ctx, id)
}

func (s *coursService) ListByModule(ctx context.Context, idModule string) ([]dto.SoumissionResponse, error) {
	cours, err := s.repo.Cours.ListByModule(ctx, idModule)
	if err != nil {
		return nil, err
	}
	return toCoursResponses(cours), nil
}

func (s *coursService) ListByEnseignant(ctx context.Context, idEnseignant string) ([]dto.SoumissionResponse, error) {
	cours, err := s.repo.Cours.ListByEnseignant(ctx, idEnseignant)
	if err != nil {
		return nil, err
	}
	return toCoursResponses(cours), nil
}

func (s *coursService) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error) {
	offset := (page - 1) * pageSize
	cours, total, err := s.repo.Cours.ListByStatus(ctx, status, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return toCoursResponses(cours), total, nil
}

func toCoursResponse(c *model.Cours) dto.SoumissionResponse {
	return dto.SoumissionResponse{
		ID:          c.ID,
		Code:        c.Code,
		TitreFr:     c.TitreFr,
		TitreAr:     c.TitreAr,
		FichierPDF:  c.FichierPDF,
		Status:      c.Status,
		Observation: c.Observation,
		IDAuteur:    c.IDEnseignant,
		IDCible:     c.IDModule,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toCoursResponses(cours []model.Cours) []dto.SoumissionResponse {
	result := make([]dto.SoumissionResponse, 0, len(cours))
	for i := range cours {
		result = append(result, toCoursResponse(&cours[i]))
	}
	return result
}
