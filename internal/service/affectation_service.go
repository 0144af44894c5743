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
	ErrAffectationIntrouvable = apperr.Introuvable("EnsModule", "affectation inexistante")
	ErrAffectationExiste      = apperr.Conflit("EnsModule", "cle", "l'enseignant est déjà affecté à ce module pour cette année scolaire")
	ErrSemestreInvalide       = apperr.Validation("EnsModule", "semestre", "semestre hors du vocabulaire admis")
)

// AffectationService affectations d'enseignement par année scolaire.
// La clé est le triplet (module, enseignant, année) : le même couple peut
// se répéter d'une année à l'autre, jamais dans la même.
type AffectationService interface {
	Affecter(ctx context.Context, req *dto.AssignRequest) (*dto.EnsModuleResponse, error)
	Retirer(ctx context.Context, idModule, idEnseignant, anneeScolaire string) error
	ChangerSemestre(ctx context.Context, idModule, idEnseignant, anneeScolaire, semestre string) (*dto.EnsModuleResponse, error)
	ListByEnseignant(ctx context.Context, idEnseignant string) ([]dto.EnsModuleResponse, error)
	ListByModule(ctx context.Context, idModule string) ([]dto.EnsModuleResponse, error)
	ListByAnnee(ctx context.Context, anneeScolaire string) ([]dto.EnsModuleResponse, error)
}

type affectationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAffectationService crée l'AffectationService
func NewAffectationService(repo *repository.Repository, logger *zap.Logger) AffectationService {
	return &affectationService{repo: repo, logger: logger}
}

// Affecter crée une affectation après vérification des références et de
// l'unicité du triplet. Le semestre absent est stocké comme chaîne vide,
// jamais NULL, pour que la recherche par égalité exacte reste possible.
func (s *affectationService) Affecter(ctx context.Context, req *dto.AssignRequest) (*dto.EnsModuleResponse, error) {
	semestre := strings.TrimSpace(req.Semestre)
	if !model.SemestresValides[semestre] {
		return nil, ErrSemestreInvalide
	}

	if _, err := s.repo.Module.GetByID(ctx, req.IDModule); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Enseignant.GetByID(ctx, req.IDEnseignant); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnseignantIntrouvable
		}
		return nil, err
	}

	annee := strings.TrimSpace(req.AnneeScolaire)
	if _, err := s.repo.EnsModule.GetByKey(ctx, req.IDModule, req.IDEnseignant, annee); err == nil {
		return nil, ErrAffectationExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	affectation := &model.EnsModule{
		IDModule:      req.IDModule,
		IDEnseignant:  req.IDEnseignant,
		AnneeScolaire: annee,
		Semestre:      semestre,
	}
	if err := s.repo.EnsModule.Create(ctx, affectation); err != nil {
		s.logger.Error("création de l'affectation", zap.Error(err))
		return nil, err
	}

	resp := toEnsModuleResponse(affectation)
	return &resp, nil
}

// Retirer supprime une affectation par sa clé composite
func (s *affectationService) Retirer(ctx context.Context, idModule, idEnseignant, anneeScolaire string) error {
	if _, err := s.repo.EnsModule.GetByKey(ctx, idModule, idEnseignant, anneeScolaire); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAffectationIntrouvable
		}
		return err
	}
	return s.repo.EnsModule.Delete(ctx, idModule, idEnseignant, anneeScolaire)
}

// ChangerSemestre met à jour le seul champ mutable de l'affectation
func (s *affectationService) ChangerSemestre(ctx context.Context, idModule, idEnseignant, anneeScolaire, semestre string) (*dto.EnsModuleResponse, error) {
	semestre = strings.TrimSpace(semestre)
	if !model.SemestresValides[semestre] {
		return nil, ErrSemestreInvalide
	}

	affectation, err := s.repo.EnsModule.GetByKey(ctx, idModule, idEnseignant, anneeScolaire)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffectationIntrouvable
		}
		return nil, err
	}

	affectation.Semestre = semestre
	if err := s.repo.EnsModule.Update(ctx, affectation); err != nil {
		return nil, err
	}

	resp := toEnsModuleResponse(affectation)
	return &resp, nil
}

func (s *affectationService) ListByEnseignant(ctx context.Context, idEnseignant string) ([]dto.EnsModuleResponse, error) {
	affectations, err := s.repo.EnsModule.ListByEnseignant(ctx, idEnseignant)
	if err != nil {
		return nil, err
	}
	return toEnsModuleResponses(affectations), nil
}

func (s *affectationService) ListByModule(ctx context.Context, idModule string) ([]dto.EnsModuleResponse, error) {
	affectations, err := s.repo.EnsModule.ListByModule(ctx, idModule)
	if err != nil {
		return nil, err
	}
	return toEnsModuleResponses(affectations), nil
}

func (s *affectationService) ListByAnnee(ctx context.Context, anneeScolaire string) ([]dto.EnsModuleResponse, error) {
	affectations, err := s.repo.EnsModule.ListByAnnee(ctx, anneeScolaire)
	if err != nil {
		return nil, err
	}
	return toEnsModuleResponses(affectations), nil
}

func toEnsModuleResponse(a *model.EnsModule) dto.EnsModuleResponse {
	return dto.EnsModuleResponse{
		IDModule:      a.IDModule,
		IDEnseignant:  a.IDEnseignant,
		AnneeScolaire: a.AnneeScolaire,
		Semestre:      a.Semestre,
	}
}

func toEnsModuleResponses(affectations []model.EnsModule) []dto.EnsModuleResponse {
	result := make([]dto.EnsModuleResponse, 0, len(affectations))
	for i := range affectations {
		result = append(result, toEnsModuleResponse(&affectations[i]))
	}
	return result
}
