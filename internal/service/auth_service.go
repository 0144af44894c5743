package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/redis"
)

// ── Erreurs d'authentification ──

var (
	ErrIdentifiantsInvalides = apperr.Validation("Compte", "credentials", "identifiant ou mot de passe incorrect")
	ErrRefreshInvalide       = apperr.Validation("Compte", "refresh_token", "refresh token invalide ou expiré")
)

// AuthService connexion, renouvellement et révocation des tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	repo           *repository.Repository
	jwtManager     *jwt.Manager
	redisClient    *redis.Client
	accessTokenTTL time.Duration
	logger         *zap.Logger
}

// NewAuthService crée l'AuthService. redisClient peut être nil : la
// déconnexion devient alors un no-op (mode dégradé, les tokens expirent
// d'eux-mêmes).
func NewAuthService(repo *repository.Repository, jwtManager *jwt.Manager, redisClient *redis.Client, accessTokenTTL time.Duration, logger *zap.Logger) AuthService {
	return &authService{
		repo:           repo,
		jwtManager:     jwtManager,
		redisClient:    redisClient,
		accessTokenTTL: accessTokenTTL,
		logger:         logger,
	}
}

// Login vérifie le couple identifiant / mot de passe et délivre les tokens.
// Compte inconnu et mot de passe erroné renvoient la même erreur.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	compte, err := s.repo.Compte.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentifiantsInvalides
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(compte.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrIdentifiantsInvalides
	}

	return s.delivrerTokens(compte.ID, compte.Username, compte.Role, compte.CreatedAt.Format("2006-01-02 15:04:05"))
}

// Refresh renouvelle le couple de tokens à partir d'un refresh token valide
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtManager.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalide
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalide
	}

	if s.redisClient != nil {
		blacklisted, err := s.redisClient.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("liste noire indisponible", zap.Error(err))
		} else if blacklisted {
			return nil, ErrRefreshInvalide
		}
	}

	// le compte peut avoir été supprimé entre-temps
	compte, err := s.repo.Compte.GetByID(ctx, claims.CompteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalide
		}
		return nil, err
	}

	return s.delivrerTokens(compte.ID, compte.Username, compte.Role, compte.CreatedAt.Format("2006-01-02 15:04:05"))
}

// Logout révoque le token courant via la liste noire Redis
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.redisClient == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.redisClient.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("révocation du token", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) delivrerTokens(compteID, username, role, createdAt string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(compteID, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(compteID, role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
		Compte: dto.CompteResponse{
			ID:        compteID,
			Username:  username,
			Role:      role,
			CreatedAt: createdAt,
		},
	}, nil
}
