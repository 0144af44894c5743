package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
)

func setupTestCompteService() (CompteService, StagiaireService, *testMocks) {
	repo, mocks := newTestRepository()
	logger := zap.NewNop()
	return NewCompteService(repo, bcrypt.MinCost, logger), NewStagiaireService(repo, logger), mocks
}

func TestCompteService_CreateCompte_Success(t *testing.T) {
	svc, _, mocks := setupTestCompteService()

	resp, err := svc.CreateCompte(context.Background(), &dto.SignupRequest{
		Username: "a.benali",
		Password: "motdepasse1",
		Role:     model.RoleStagiaire,
	})
	if err != nil {
		t.Fatalf("CreateCompte: %v", err)
	}
	if resp.Username != "a.benali" || resp.Role != model.RoleStagiaire {
		t.Errorf("réponse inattendue: %+v", resp)
	}

	compte := mocks.compte.comptes[resp.ID]
	if compte == nil {
		t.Fatal("compte absent du repository")
	}
	if compte.PasswordHash == "motdepasse1" {
		t.Error("le mot de passe est stocké en clair")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(compte.PasswordHash), []byte("motdepasse1")); err != nil {
		t.Errorf("hash incohérent: %v", err)
	}
}

func TestCompteService_CreateCompte_UsernameExiste(t *testing.T) {
	svc, _, _ := setupTestCompteService()

	req := &dto.SignupRequest{Username: "a.benali", Password: "motdepasse1", Role: model.RoleEnseignant}
	if _, err := svc.CreateCompte(context.Background(), req); err != nil {
		t.Fatalf("première création: %v", err)
	}

	_, err := svc.CreateCompte(context.Background(), req)
	if !errors.Is(err, ErrUsernameExiste) {
		t.Errorf("attendu ErrUsernameExiste, obtenu %v", err)
	}
}

func TestCompteService_CreateCompte_RoleInvalide(t *testing.T) {
	svc, _, _ := setupTestCompteService()

	_, err := svc.CreateCompte(context.Background(), &dto.SignupRequest{
		Username: "x.y",
		Password: "motdepasse1",
		Role:     "Administrateur",
	})
	if !errors.Is(err, ErrRoleInvalide) {
		t.Errorf("attendu ErrRoleInvalide, obtenu %v", err)
	}
}

func TestCompteService_LierProfil_Success(t *testing.T) {
	svc, stagiaires, mocks := setupTestCompteService()
	ctx := context.Background()

	compte, err := svc.CreateCompte(ctx, &dto.SignupRequest{
		Username: "s.khelifi", Password: "motdepasse1", Role: model.RoleStagiaire,
	})
	if err != nil {
		t.Fatalf("CreateCompte: %v", err)
	}
	stagiaire := &model.Stagiaire{NomFr: "KHELIFI", PrenomFr: "Samir"}
	if err := mocks.stagiaire.Create(ctx, stagiaire); err != nil {
		t.Fatalf("seed stagiaire: %v", err)
	}

	if err := svc.LierProfil(ctx, stagiaires, stagiaire.ID, compte.ID); err != nil {
		t.Fatalf("LierProfil: %v", err)
	}
	if stagiaire.IDCompte == nil || *stagiaire.IDCompte != compte.ID {
		t.Errorf("référence de compte non posée: %v", stagiaire.IDCompte)
	}
}

func TestCompteService_LierProfil_RoleIncompatible(t *testing.T) {
	svc, stagiaires, mocks := setupTestCompteService()
	ctx := context.Background()

	// compte Enseignant, profil stagiaire
	compte, _ := svc.CreateCompte(ctx, &dto.SignupRequest{
		Username: "m.saidi", Password: "motdepasse1", Role: model.RoleEnseignant,
	})
	stagiaire := &model.Stagiaire{NomFr: "SAIDI", PrenomFr: "Mounir"}
	_ = mocks.stagiaire.Create(ctx, stagiaire)

	err := svc.LierProfil(ctx, stagiaires, stagiaire.ID, compte.ID)
	if !errors.Is(err, ErrRoleIncompatible) {
		t.Errorf("attendu ErrRoleIncompatible, obtenu %v", err)
	}
	if stagiaire.IDCompte != nil {
		t.Error("le profil ne devait pas être lié")
	}
}

func TestCompteService_LierProfil_DejaLie(t *testing.T) {
	svc, stagiaires, mocks := setupTestCompteService()
	ctx := context.Background()

	compte, _ := svc.CreateCompte(ctx, &dto.SignupRequest{
		Username: "r.cherif", Password: "motdepasse1", Role: model.RoleStagiaire,
	})
	premier := &model.Stagiaire{NomFr: "CHERIF", PrenomFr: "Rachid"}
	second := &model.Stagiaire{NomFr: "CHERIF", PrenomFr: "Ryad"}
	_ = mocks.stagiaire.Create(ctx, premier)
	_ = mocks.stagiaire.Create(ctx, second)

	if err := svc.LierProfil(ctx, stagiaires, premier.ID, compte.ID); err != nil {
		t.Fatalf("première liaison: %v", err)
	}

	// profil déjà lié
	if err := svc.LierProfil(ctx, stagiaires, premier.ID, compte.ID); !errors.Is(err, ErrProfilDejaLie) {
		t.Errorf("profil déjà lié: attendu ErrProfilDejaLie, obtenu %v", err)
	}
	// compte déjà porteur d'un profil de ce type
	if err := svc.LierProfil(ctx, stagiaires, second.ID, compte.ID); !errors.Is(err, ErrProfilDejaLie) {
		t.Errorf("compte déjà lié: attendu ErrProfilDejaLie, obtenu %v", err)
	}
}

func TestCompteService_LierProfil_Introuvables(t *testing.T) {
	svc, stagiaires, mocks := setupTestCompteService()
	ctx := context.Background()

	stagiaire := &model.Stagiaire{NomFr: "AMRANI", PrenomFr: "Karim"}
	_ = mocks.stagiaire.Create(ctx, stagiaire)

	if err := svc.LierProfil(ctx, stagiaires, stagiaire.ID, "inconnu"); !errors.Is(err, ErrCompteIntrouvable) {
		t.Errorf("compte inconnu: attendu ErrCompteIntrouvable, obtenu %v", err)
	}

	compte, _ := svc.CreateCompte(ctx, &dto.SignupRequest{
		Username: "k.amrani", Password: "motdepasse1", Role: model.RoleStagiaire,
	})
	if err := svc.LierProfil(ctx, stagiaires, "inconnu", compte.ID); !errors.Is(err, ErrProfilIntrouvable) {
		t.Errorf("profil inconnu: attendu ErrProfilIntrouvable, obtenu %v", err)
	}
}

func TestCompteService_DelierProfil_ConserveLeCompte(t *testing.T) {
	svc, stagiaires, mocks := setupTestCompteService()
	ctx := context.Background()

	compte, _ := svc.CreateCompte(ctx, &dto.SignupRequest{
		Username: "n.toumi", Password: "motdepasse1", Role: model.RoleStagiaire,
	})
	stagiaire := &model.Stagiaire{NomFr: "TOUMI", PrenomFr: "Nadia"}
	_ = mocks.stagiaire.Create(ctx, stagiaire)
	if err := svc.LierProfil(ctx, stagiaires, stagiaire.ID, compte.ID); err != nil {
		t.Fatalf("LierProfil: %v", err)
	}

	if err := svc.DelierProfil(ctx, stagiaires, stagiaire.ID); err != nil {
		t.Fatalf("DelierProfil: %v", err)
	}
	if stagiaire.IDCompte != nil {
		t.Error("la référence de compte devait passer à nil")
	}
	if _, err := svc.GetByID(ctx, compte.ID); err != nil {
		t.Errorf("le compte devait être conservé: %v", err)
	}
}
