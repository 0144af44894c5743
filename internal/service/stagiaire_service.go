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
	ErrStagiaireIntrouvable = apperr.Introuvable("Stagiaire", "stagiaire inexistant")
	ErrEmailStagiaireExiste = apperr.Conflit("Stagiaire", "email", "email déjà utilisé par un autre stagiaire")
)

// StagiaireService gestion des profils stagiaires
type StagiaireService interface {
	ProfilBinder
	Create(ctx context.Context, req *dto.CreateStagiaireRequest) (*dto.PersonneResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PersonneResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePersonneRequest) (*dto.PersonneResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]dto.PersonneResponse, int64, error)
}

type stagiaireService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStagiaireService crée le StagiaireService
func NewStagiaireService(repo *repository.Repository, logger *zap.Logger) StagiaireService {
	return &stagiaireService{repo: repo, logger: logger}
}

// Create crée un profil stagiaire. Noms normalisés à l'écriture,
// email minusculisé et contrôlé unique.
func (s *stagiaireService) Create(ctx context.Context, req *dto.CreateStagiaireRequest) (*dto.PersonneResponse, error) {
	dn, email, err := validerPersonne(req.DateNaissance, req.Email, req.Telephone)
	if err != nil {
		return nil, err
	}

	if email != nil {
		if err := s.verifierEmailLibre(ctx, *email, ""); err != nil {
			return nil, err
		}
	}

	stagiaire := &model.Stagiaire{
		NomFr:         NormaliserNom(req.NomFr),
		NomAr:         strings.TrimSpace(req.NomAr),
		PrenomFr:      NormaliserPrenom(req.PrenomFr),
		PrenomAr:      strings.TrimSpace(req.PrenomAr),
		DateNaissance: dn,
		Email:         email,
		Telephone:     strings.TrimSpace(req.Telephone),
	}

	if err := s.repo.Stagiaire.Create(ctx, stagiaire); err != nil {
		s.logger.Error("création du stagiaire", zap.Error(err))
		return nil, err
	}

	resp := s.toResponse(stagiaire)
	return &resp, nil
}

func (s *stagiaireService) GetByID(ctx context.Context, id string) (*dto.PersonneResponse, error) {
	stagiaire, err := s.repo.Stagiaire.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireIntrouvable
		}
		return nil, err
	}
	resp := s.toResponse(stagiaire)
	return &resp, nil
}

// Update mise à jour partielle ; les champs fournis repassent par la
// même normalisation qu'à la création.
func (s *stagiaireService) Update(ctx context.Context, id string, req *dto.UpdatePersonneRequest) (*dto.PersonneResponse, error) {
	stagiaire, err := s.repo.Stagiaire.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireIntrouvable
		}
		return nil, err
	}

	if req.NomFr != nil {
		stagiaire.NomFr = NormaliserNom(*req.NomFr)
	}
	if req.NomAr != nil {
		stagiaire.NomAr = strings.TrimSpace(*req.NomAr)
	}
	if req.PrenomFr != nil {
		stagiaire.PrenomFr = NormaliserPrenom(*req.PrenomFr)
	}
	if req.PrenomAr != nil {
		stagiaire.PrenomAr = strings.TrimSpace(*req.PrenomAr)
	}
	if req.DateNaissance != nil {
		if *req.DateNaissance == "" {
			stagiaire.DateNaissance = nil
		} else {
			d, err := ParseDate(*req.DateNaissance)
			if err != nil {
				return nil, ErrDateInvalide
			}
			if !DateNaissanceValide(d) {
				return nil, ErrDateNaissanceInvalide
			}
			stagiaire.DateNaissance = &d
		}
	}
	if req.Email != nil {
		if *req.Email == "" {
			stagiaire.Email = nil
		} else {
			e := NormaliserEmail(*req.Email)
			if err := s.verifierEmailLibre(ctx, e, id); err != nil {
				return nil, err
			}
			stagiaire.Email = &e
		}
	}
	if req.Telephone != nil {
		tel := strings.TrimSpace(*req.Telephone)
		if tel != "" && !TelephoneValide(tel) {
			return nil, ErrTelephoneInvalide
		}
		stagiaire.Telephone = tel
	}

	if err := s.repo.Stagiaire.Update(ctx, stagiaire); err != nil {
		s.logger.Error("mise à jour du stagiaire", zap.Error(err))
		return nil, err
	}

	resp := s.toResponse(stagiaire)
	return &resp, nil
}

// Delete supprime le profil ; les inscriptions du stagiaire suivent
// en cascade, le compte lié est conservé (référence mise à NULL).
func (s *stagiaireService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Stagiaire.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStagiaireIntrouvable
		}
		return err
	}
	return s.repo.Stagiaire.Delete(ctx, id)
}

func (s *stagiaireService) List(ctx context.Context, page, pageSize int) ([]dto.PersonneResponse, int64, error) {
	offset := (page - 1) * pageSize
	stagiaires, total, err := s.repo.Stagiaire.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PersonneResponse, 0, len(stagiaires))
	for i := range stagiaires {
		result = append(result, s.toResponse(&stagiaires[i]))
	}
	return result, total, nil
}

// ── Implémentation ProfilBinder ──

func (s *stagiaireService) GetProfil(ctx context.Context, id string) (model.Profil, error) {
	return s.repo.Stagiaire.GetByID(ctx, id)
}

func (s *stagiaireService) ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error) {
	return s.repo.Stagiaire.GetByCompteID(ctx, compteID)
}

func (s *stagiaireService) SauvegarderProfil(ctx context.Context, profil model.Profil) error {
	stagiaire, ok := profil.(*model.Stagiaire)
	if !ok {
		return ErrProfilIntrouvable
	}
	return s.repo.Stagiaire.Update(ctx, stagiaire)
}

func (s *stagiaireService) verifierEmailLibre(ctx context.Context, email, saufID string) error {
	existant, err := s.repo.Stagiaire.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existant.ID != saufID {
		return ErrEmailStagiaireExiste
	}
	return nil
}

func (s *stagiaireService) toResponse(st *model.Stagiaire) dto.PersonneResponse {
	return toPersonneResponse(st.ID, st.NomFr, st.NomAr, st.PrenomFr, st.PrenomAr,
		st.DateNaissance, st.Email, st.Telephone, st.IDCompte, nil)
}
