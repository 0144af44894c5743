package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Erreurs du module identité ──

var (
	ErrUsernameExiste    = apperr.Conflit("Compte", "username", "nom d'utilisateur déjà utilisé")
	ErrRoleInvalide      = apperr.Validation("Compte", "role", "rôle inconnu")
	ErrCompteIntrouvable = apperr.Introuvable("Compte", "compte inexistant")
	ErrProfilIntrouvable = apperr.Introuvable("Profil", "profil inexistant")
	ErrRoleIncompatible  = apperr.Validation("Profil", "role", "le type de profil ne correspond pas au rôle du compte")
	ErrProfilDejaLie     = apperr.Conflit("Profil", "id_compte", "le compte est déjà lié à un profil de ce type")
)

// ProfilBinder opérations de persistance propres à un type de profil.
// Chaque service de profil l'implémente ; la logique de liaison
// compte↔profil n'est ainsi écrite qu'une fois.
type ProfilBinder interface {
	GetProfil(ctx context.Context, id string) (model.Profil, error)
	ProfilParCompte(ctx context.Context, compteID string) (model.Profil, error)
	SauvegarderProfil(ctx context.Context, profil model.Profil) error
}

// CompteService gestion des comptes et de la liaison aux profils
type CompteService interface {
	CreateCompte(ctx context.Context, req *dto.SignupRequest) (*dto.CompteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CompteResponse, error)
	List(ctx context.Context, page, pageSize int) ([]dto.CompteResponse, int64, error)
	LierProfil(ctx context.Context, binder ProfilBinder, profilID, compteID string) error
	DelierProfil(ctx context.Context, binder ProfilBinder, profilID string) error
}

type compteService struct {
	repo       *repository.Repository
	bcryptCost int
	logger     *zap.Logger
}

// NewCompteService crée le CompteService
func NewCompteService(repo *repository.Repository, bcryptCost int, logger *zap.Logger) CompteService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &compteService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// CreateCompte crée un compte d'identité ; le rôle est immuable ensuite.
func (s *compteService) CreateCompte(ctx context.Context, req *dto.SignupRequest) (*dto.CompteResponse, error) {
	if !model.RolesValides[req.Role] {
		return nil, ErrRoleInvalide
	}

	// unicité du nom d'utilisateur (sensible à la casse, tel que stocké)
	if _, err := s.repo.Compte.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe", zap.Error(err))
		return nil, err
	}

	compte := &model.Compte{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	if err := s.repo.Compte.Create(ctx, compte); err != nil {
		s.logger.Error("création du compte", zap.Error(err))
		return nil, err
	}

	resp := toCompteResponse(compte)
	return &resp, nil
}

func (s *compteService) GetByID(ctx context.Context, id string) (*dto.CompteResponse, error) {
	compte, err := s.repo.Compte.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompteIntrouvable
		}
		return nil, err
	}
	resp := toCompteResponse(compte)
	return &resp, nil
}

func (s *compteService) List(ctx context.Context, page, pageSize int) ([]dto.CompteResponse, int64, error) {
	offset := (page - 1) * pageSize
	comptes, total, err := s.repo.Compte.List(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.CompteResponse, 0, len(comptes))
	for i := range comptes {
		result = append(result, toCompteResponse(&comptes[i]))
	}
	return result, total, nil
}

// LierProfil attache un profil à un compte du rôle correspondant.
// Au plus un profil de chaque type par compte ; l'index unique sur
// id_compte couvre la course résiduelle.
func (s *compteService) LierProfil(ctx context.Context, binder ProfilBinder, profilID, compteID string) error {
	compte, err := s.repo.Compte.GetByID(ctx, compteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompteIntrouvable
		}
		return err
	}

	profil, err := binder.GetProfil(ctx, profilID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfilIntrouvable
		}
		return err
	}

	if compte.Role != profil.RoleAttendu() {
		return ErrRoleIncompatible
	}

	if profil.CompteRef() != nil {
		return ErrProfilDejaLie
	}

	if _, err := binder.ProfilParCompte(ctx, compteID); err == nil {
		return ErrProfilDejaLie
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	profil.SetCompteRef(&compte.ID)
	if err := binder.SauvegarderProfil(ctx, profil); err != nil {
		s.logger.Error("liaison du profil", zap.Error(err))
		return err
	}

	return nil
}

// DelierProfil détache le profil de son compte : la référence passe à NULL,
// le compte est conservé. Le compte ne donne plus accès au tableau de bord
// de ce profil.
func (s *compteService) DelierProfil(ctx context.Context, binder ProfilBinder, profilID string) error {
	profil, err := binder.GetProfil(ctx, profilID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfilIntrouvable
		}
		return err
	}

	profil.SetCompteRef(nil)
	if err := binder.SauvegarderProfil(ctx, profil); err != nil {
		s.logger.Error("déliaison du profil", zap.Error(err))
		return err
	}

	return nil
}

func toCompteResponse(compte *model.Compte) dto.CompteResponse {
	return dto.CompteResponse{
		ID:        compte.ID,
		Username:  compte.Username,
		Role:      compte.Role,
		CreatedAt: compte.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
