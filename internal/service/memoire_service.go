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

var ErrMemoireIntrouvable = apperr.Introuvable("Memoire", "mémoire inexistant")

// MemoireService dépôt et revue des mémoires de fin de formation.
// La revue revient à l'encadreur ; le vocabulaire d'états du mémoire
// (accepte / rejete) diffère de celui des cours et programmes.
type MemoireService interface {
	Deposer(ctx context.Context, idStagiaire string, req *dto.CreateMemoireRequest) (*dto.SoumissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error)
	Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error)
	Delete(ctx context.Context, id string) error
	ListByStagiaire(ctx context.Context, idStagiaire string) ([]dto.SoumissionResponse, error)
	ListByEncadreur(ctx context.Context, idEncadreur string) ([]dto.SoumissionResponse, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error)
}

type memoireService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemoireService crée le MemoireService
func NewMemoireService(repo *repository.Repository, logger *zap.Logger) MemoireService {
	return &memoireService{repo: repo, logger: logger}
}

func (s *memoireService) Deposer(ctx context.Context, idStagiaire string, req *dto.CreateMemoireRequest) (*dto.SoumissionResponse, error) {
	if err := verifierFichierPDF(req.FichierPDF); err != nil {
		return nil, err
	}

	if _, err := s.repo.Stagiaire.GetByID(ctx, idStagiaire); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireIntrouvable
		}
		return nil, err
	}
	if req.IDEncadreur != nil {
		if _, err := s.repo.Enseignant.GetByID(ctx, *req.IDEncadreur); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEnseignantIntrouvable
			}
			return nil, err
		}
	}

	memoire := &model.Memoire{
		TitreFr:     strings.TrimSpace(req.TitreFr),
		TitreAr:     strings.TrimSpace(req.TitreAr),
		FichierPDF:  strings.TrimSpace(req.FichierPDF),
		Status:      model.MemoireEnAttente,
		IDStagiaire: idStagiaire,
		IDEncadreur: req.IDEncadreur,
	}
	if err := s.repo.Memoire.Create(ctx, memoire); err != nil {
		s.logger.Error("dépôt du mémoire", zap.Error(err))
		return nil, err
	}

	resp := toMemoireResponse(memoire)
	return &resp, nil
}

func (s *memoireService) GetByID(ctx context.Context, id string) (*dto.SoumissionResponse, error) {
	memoire, err := s.repo.Memoire.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoireIntrouvable
		}
		return nil, err
	}
	resp := toMemoireResponse(memoire)
	return &resp, nil
}

// Revoir applique la décision de l'encadreur dans une transaction ;
// un mémoire déjà accepté ou rejeté ne bouge plus.
func (s *memoireService) Revoir(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SoumissionResponse, *dto.TransitionEvent, error) {
	nouveau, err := deciderStatut(req, model.MemoireAccepte, model.MemoireRejete)
	if err != nil {
		return nil, nil, err
	}

	var memoire *model.Memoire
	var event *dto.TransitionEvent

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		m, err := tx.Memoire.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemoireIntrouvable
			}
			return err
		}
		if m.Status != model.MemoireEnAttente {
			return ErrDejaRevue
		}

		ancien := m.Status
		m.Status = nouveau
		m.Observation = strings.TrimSpace(req.Observation)
		if err := tx.Memoire.Update(ctx, m); err != nil {
			return err
		}

		memoire = m
		event = &dto.TransitionEvent{
			Entite: "Memoire", ID: m.ID,
			AncienStatut: ancien, NouveauStatut: nouveau,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("mémoire revu",
		zap.String("id", id), zap.String("statut", nouveau))

	resp := toMemoireResponse(memoire)
	return &resp, event, nil
}

func (s *memoireService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Memoire.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemoireIntrouvable
		}
		return err
	}
	return s.repo.Memoire.Delete(ctx, id)
}

func (s *memoireService) ListByStagiaire(ctx context.Context, idStagiaire string) ([]dto.SoumissionResponse, error) {
	memoires, err := s.repo.Memoire.ListByStagiaire(ctx, idStagiaire)
	if err != nil {
		return nil, err
	}
	return toMemoireResponses(memoires), nil
}

func (s *memoireService) ListByEncadreur(ctx context.Context, idEncadreur string) ([]dto.SoumissionResponse, error) {
	memoires, err := s.repo.Memoire.ListByEncadreur(ctx, idEncadreur)
	if err != nil {
		return nil, err
	}
	return toMemoireResponses(memoires), nil
}

func (s *memoireService) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]dto.SoumissionResponse, int64, error) {
	offset := (page - 1) * pageSize
	memoires, total, err := s.repo.Memoire.ListByStatus(ctx, status, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return toMemoireResponses(memoires), total, nil
}

func toMemoireResponse(m *model.Memoire) dto.SoumissionResponse {
	resp := dto.SoumissionResponse{
		ID:          m.ID,
		TitreFr:     m.TitreFr,
		TitreAr:     m.TitreAr,
		FichierPDF:  m.FichierPDF,
		Status:      m.Status,
		Observation: m.Observation,
		IDAuteur:    m.IDStagiaire,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.IDEncadreur != nil {
		resp.IDCible = *m.IDEncadreur
	}
	return resp
}

func toMemoireResponses(memoires []model.Memoire) []dto.SoumissionResponse {
	result := make([]dto.SoumissionResponse, 0, len(memoires))
	for i := range memoires {
		result = append(result, toMemoireResponse(&memoires[i]))
	}
	return result
}
