package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idrissziadi/stage-sub004/config"
	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
)

func setupTestAuthService() (AuthService, *testMocks) {
	repo, mocks := newTestRepository()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "secret-de-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	// redis nil : la déconnexion est un no-op, le refresh ignore la liste noire
	return NewAuthService(repo, jwtMgr, nil, 15*time.Minute, zap.NewNop()), mocks
}

func seedCompteForAuth(t *testing.T, mocks *testMocks, username, password, role string) *model.Compte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	compte := &model.Compte{Username: username, PasswordHash: string(hash), Role: role}
	if err := mocks.compte.Create(context.Background(), compte); err != nil {
		t.Fatalf("seed compte: %v", err)
	}
	return compte
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks := setupTestAuthService()
	seedCompteForAuth(t, mocks, "a.benali", "motdepasse1", model.RoleEnseignant)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "a.benali",
		Password: "motdepasse1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("tokens manquants")
	}
	if resp.Compte.Role != model.RoleEnseignant {
		t.Errorf("rôle attendu %s, obtenu %s", model.RoleEnseignant, resp.Compte.Role)
	}
}

func TestAuthService_Login_MauvaisMotDePasse(t *testing.T) {
	svc, mocks := setupTestAuthService()
	seedCompteForAuth(t, mocks, "a.benali", "motdepasse1", model.RoleStagiaire)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "a.benali",
		Password: "autre-chose",
	})
	if !errors.Is(err, ErrIdentifiantsInvalides) {
		t.Errorf("attendu ErrIdentifiantsInvalides, obtenu %v", err)
	}
}

func TestAuthService_Login_CompteInconnu(t *testing.T) {
	svc, _ := setupTestAuthService()

	// même erreur que pour un mauvais mot de passe : pas d'oracle d'existence
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "inconnu",
		Password: "motdepasse1",
	})
	if !errors.Is(err, ErrIdentifiantsInvalides) {
		t.Errorf("attendu ErrIdentifiantsInvalides, obtenu %v", err)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, mocks := setupTestAuthService()
	seedCompteForAuth(t, mocks, "a.benali", "motdepasse1", model.RoleStagiaire)

	connexion, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "a.benali", Password: "motdepasse1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: connexion.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("tokens manquants après renouvellement")
	}
}

func TestAuthService_Refresh_AvecAccessToken(t *testing.T) {
	svc, mocks := setupTestAuthService()
	seedCompteForAuth(t, mocks, "a.benali", "motdepasse1", model.RoleStagiaire)

	connexion, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "a.benali", Password: "motdepasse1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// un access token n'est pas accepté comme refresh token
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: connexion.AccessToken})
	if !errors.Is(err, ErrRefreshInvalide) {
		t.Errorf("attendu ErrRefreshInvalide, obtenu %v", err)
	}
}

func TestAuthService_Refresh_TokenIllisible(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: "pas-un-jwt"})
	if !errors.Is(err, ErrRefreshInvalide) {
		t.Errorf("attendu ErrRefreshInvalide, obtenu %v", err)
	}
}
