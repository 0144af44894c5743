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
	ErrEnseignantIntrouvable = apperr.Introuvable("Enseignant", "enseignant inexistant")
	ErrEmailEnseignantExiste = apperr.Conflit("Enseignant", "email", "email déjà utilisé par un autre enseignant")
	ErrGradeIntrouvable      = apperr.Introuvable("Grade", "grade inexistant")
)

// EnseignantService gestion des profils enseignants
type EnseignantService interface {
	ProfilBinder
	Create(ctx context.Context, req *dto.CreateEnseignantRequest) (*dto.PersonneResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PersonneResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEnseignantRequest) (*dto.PersonneResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]dto.PersonneResponse, int64, error)
}

type enseignantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnseignantService crée l'EnseignantService
func NewEnseignantService(repo *repository.Repository, logger *zap.Logger) EnseignantService {
	return &enseignantService{repo: repo, logger: logger}
}

func (s *enseignantService) Create(ctx context.Context, req *dto.CreateEnseignantRequest) (*dto.PersonneResponse, error) {
	dn, email, err := validerPersonne(req.DateNaissance, req.Email, req.Telephone)
	if err != nil {
		return nil, err
	}

	if email != nil {
		if err := s.verifierEmailLibre(ctx, *email, ""); err != nil {
			return nil, err
		}
	}

	if req.IDGrade != nil {
		if _, err := s.repo.Grade.GetByID(ctx, *req.IDGrade); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGradeIntrouvable
			}
			return nil, err
		}
	}

	enseignant := &model.Enseignant{
		NomFr:         NormaliserNom(req.NomFr),
		NomAr:         strings.TrimSpace(req.NomAr),
		PrenomFr:      NormaliserPrenom(req.PrenomFr),
		PrenomAr:      strings.TrimSpace(req.PrenomAr),
		DateNaissance: dn,
		Email:         email,
		Telephone:     strings.TrimSpace(req.Telephone),
		IDGrade:       req.IDGrade,
	}

	if err := s.repo.Enseignant.Create(ctx, enseignant); err != nil {
		s.logger.Error("création de l'enseignant", zap.Error(err))
		return nil, err
	}

	resp := s.toResponse(enseignant)
	return &resp, nil
}

func (s *enseignantService) GetByID(ctx context.Context, id string) (*dto.PersonneResponse, error) {
	enseignant, err := s.repo.Enseignant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnseignantIntrouvable
		}
		return nil, err
	}
	resp := s.toResponse(enseignant)
	return &resp, nil
}

func (s *enseignantService) Update(ctx context.Context, id string, req *dto.UpdateEnseignantRequest) (*dto.PersonneResponse, error) {
	enseignant, err := s.repo.Enseignant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnseignantIntrouvable
		}
		return nil, err
	}

	if req.NomFr != nil {
		enseignant.NomFr = NormaliserNom(*req.NomFr)
	}
	if req.NomAr != nil {
		enseignant.NomAr = strings.TrimSpace(*req.NomAr)
	}
	if req.PrenomFr != nil {
		enseignant.PrenomFr = NormaliserPrenom(*req.PrenomFr)
	}
	if req.PrenomAr != nil {
		enseignant.PrenomAr = strings.TrimSpace(*req.PrenomAr)
	}
	if req.DateNaissance != nil {
		if *req.DateNaissance == "" {
			enseignant.DateNaissance = nil
		} else {
			d, err := ParseDate(*req.DateNaissance)
			if err != nil {
				return nil, ErrDateInvalide
			}
			if !DateNaissanceValide(d) {
				return nil, ErrDateNaissanceInvalide
			}
			enseignant.DateNaissance = &d
		}
	}
	if req.Email != nil {
		if *req.Email == "" {
			enseignant.Email = nil
		} else {
			e := NormaliserEmail(*req.Email)
			if err := s.verifierEmailLibre(ctx, e, id); err != nil {
				return nil, err
			}
			enseignant.Email = &e
		}
	}
	if req.Telephone != nil {
		tel := strings.TrimSpace(*req.Telephone)
		if tel != "" && !TelephoneValide(tel) {
			return nil, ErrTelephoneInvalide
		}
		enseignant.Telephone = tel
	}
	if req.IDGrade != nil {
		if _, err := s.repo.Grade.GetByID(ctx, *req.IDGrade); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGradeIntrouvable
			}
			return nil, err
		}
		enseignant.IDGrade = req.IDGrade
		enseignant.Grade = nil // rechargé au prochain Get
	}

	if err := s.repo.Enseignant.Update(ctx, enseignant); err != nil {
		s.logger.Error("mise à jour de l'enseignant", zap.Error(err))
		return nil, err
	}

	resp := s.toResponse(enseignant)
	return &resp, nil
}

// Delete supprime le profil ; cours, mémoires encadrés et affectations
// de modules suivent en cascade, le compte lié est conservé.
func (s *enseignantService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Enseignant.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnseignantIntrouvable
		}
		return err
	}
	return s.repo.Enseignant.Delete(ctx, id)
}

func (s *enseignantService) List(ctx context.Context, page, pageSize int) ([]dto.PersonneResponse, int64, error) {
	offset := (page - 1) * pageSize
	enseignants, total, err := s.repo.Enseignant.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PersonneResponse, 0, len(enseignants))
	for i := range enseignants {
		result = append(result, s.toResponse(&enseignants[i]))
	}
	return result, total, nil
}

// ── Implémentation ProfilBinder ──

func (s *enseignantService) GetProfil(ctx context.Context, id string) (model.Profil, error) {
	return s.repo.Enseignant.GetByID(ctx, id)
}

func (s *enseignantService) ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error) {
	return s.repo.Enseignant.GetByCompteID(ctx, compteID)
}

func (s *enseignantService) SauvegarderProfil(ctx context.Context, profil model.Profil) error {
	enseignant, ok := profil.(*model.Enseignant)
	if !ok {
		return ErrProfilIntrouvable
	}
	return s.repo.Enseignant.Update(ctx, enseignant)
}

func (s *enseignantService) verifierEmailLibre(ctx context.Context, email, saufID string) error {
	existant, err := s.repo.Enseignant.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existant.ID != saufID {
		return ErrEmailEnseignantExiste
	}
	return nil
}

func (s *enseignantService) toResponse(e *model.Enseignant) dto.PersonneResponse {
	return toPersonneResponse(e.ID, e.NomFr, e.NomAr, e.PrenomFr, e.PrenomAr,
		e.DateNaissance, e.Email, e.Telephone, e.IDCompte, e.Grade)
}
