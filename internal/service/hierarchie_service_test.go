package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
)

func setupTestHierarchieService() (HierarchieService, *testMocks) {
	repo, mocks := newTestRepository()
	return NewHierarchieService(repo, zap.NewNop()), mocks
}

func seedEtabRegionale(t *testing.T, mocks *testMocks) *model.EtablissementRegionale {
	t.Helper()
	etab := &model.EtablissementRegionale{Code: "DFP-16", NomFr: "Direction d'Alger", IDEtabNationale: "nat-1"}
	if err := mocks.etabRegionale.Create(context.Background(), etab); err != nil {
		t.Fatalf("seed établissement régional: %v", err)
	}
	return etab
}

func TestHierarchieService_CreateBranche(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	etab := seedEtabRegionale(t, mocks)

	branche, err := svc.CreateBranche(context.Background(), &dto.CreateNodeRequest{
		Code:          " inf ",
		DesignationFr: "Informatique",
		DesignationAr: "إعلام آلي",
		IDParent:      etab.ID,
	})
	if err != nil {
		t.Fatalf("CreateBranche: %v", err)
	}
	if branche.Code != "INF" {
		t.Errorf("code attendu INF, obtenu %q", branche.Code)
	}
	if branche.IDParent != etab.ID {
		t.Errorf("parent attendu %s, obtenu %s", etab.ID, branche.IDParent)
	}
}

func TestHierarchieService_CreateBranche_ParentIntrouvable(t *testing.T) {
	svc, _ := setupTestHierarchieService()

	_, err := svc.CreateBranche(context.Background(), &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique", DesignationAr: "إعلام آلي", IDParent: "inconnu",
	})
	if !errors.Is(err, ErrParentIntrouvable) {
		t.Errorf("attendu ErrParentIntrouvable, obtenu %v", err)
	}
}

func TestHierarchieService_CreateBranche_CodeTropCourt(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	etab := seedEtabRegionale(t, mocks)

	// " a " passe le contrôle sur la valeur brute mais tombe à un
	// caractère une fois normalisé
	_, err := svc.CreateBranche(context.Background(), &dto.CreateNodeRequest{
		Code: " a ", DesignationFr: "Trop court", DesignationAr: "قصير", IDParent: etab.ID,
	})
	if !errors.Is(err, ErrCodeInvalide) {
		t.Errorf("attendu ErrCodeInvalide, obtenu %v", err)
	}
}

func TestHierarchieService_CodeUniqueParNiveau(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	ctx := context.Background()
	etab := seedEtabRegionale(t, mocks)

	branche, err := svc.CreateBranche(ctx, &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique", DesignationAr: "إعلام آلي", IDParent: etab.ID,
	})
	if err != nil {
		t.Fatalf("CreateBranche: %v", err)
	}

	// même code au même niveau : refusé
	_, err = svc.CreateBranche(ctx, &dto.CreateNodeRequest{
		Code: "inf", DesignationFr: "Doublon", DesignationAr: "مكرر", IDParent: etab.ID,
	})
	if !errors.Is(err, ErrCodeNoeudExiste) {
		t.Errorf("attendu ErrCodeNoeudExiste, obtenu %v", err)
	}

	// même code à un autre niveau : admis, l'unicité est propre au niveau
	if _, err := svc.CreateSpecialite(ctx, &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique de gestion", DesignationAr: "إعلام آلي للتسيير", IDParent: branche.ID,
	}); err != nil {
		t.Errorf("le code devait être admis au niveau spécialité: %v", err)
	}
}

func TestHierarchieService_UpdateBranche_CodeInchange(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	ctx := context.Background()
	etab := seedEtabRegionale(t, mocks)

	branche, err := svc.CreateBranche(ctx, &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique", DesignationAr: "إعلام آلي", IDParent: etab.ID,
	})
	if err != nil {
		t.Fatalf("CreateBranche: %v", err)
	}

	// renvoyer son propre code ne déclenche pas le contrôle d'unicité
	maj, err := svc.UpdateBranche(ctx, branche.ID, &dto.UpdateNodeRequest{
		Code:          strPtr("INF"),
		DesignationFr: strPtr("Informatique et numérique"),
	})
	if err != nil {
		t.Fatalf("UpdateBranche: %v", err)
	}
	if maj.DesignationFr != "Informatique et numérique" {
		t.Errorf("désignation non mise à jour: %+v", maj)
	}
}

func TestHierarchieService_DeleteSpecialite_ExigeConfirmation(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	ctx := context.Background()
	etab := seedEtabRegionale(t, mocks)

	branche, _ := svc.CreateBranche(ctx, &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique", DesignationAr: "إعلام آلي", IDParent: etab.ID,
	})
	specialite, err := svc.CreateSpecialite(ctx, &dto.CreateNodeRequest{
		Code: "DEV", DesignationFr: "Développement", DesignationAr: "تطوير", IDParent: branche.ID,
	})
	if err != nil {
		t.Fatalf("CreateSpecialite: %v", err)
	}

	mocks.specialite.dependants[specialite.ID] = 3

	apercu, err := svc.DeleteSpecialite(ctx, specialite.ID, false)
	if !errors.Is(err, ErrSuppressionNonConfirmee) {
		t.Fatalf("attendu ErrSuppressionNonConfirmee, obtenu %v", err)
	}
	if apercu == nil || apercu.Dependants != 3 || apercu.Supprime {
		t.Errorf("aperçu inattendu: %+v", apercu)
	}

	apercu, err = svc.DeleteSpecialite(ctx, specialite.ID, true)
	if err != nil {
		t.Fatalf("suppression confirmée: %v", err)
	}
	if !apercu.Supprime {
		t.Errorf("aperçu après suppression: %+v", apercu)
	}
}

func TestHierarchieService_DeleteModule_Introuvable(t *testing.T) {
	svc, _ := setupTestHierarchieService()

	_, err := svc.DeleteModule(context.Background(), "inconnu", true)
	if !errors.Is(err, ErrNoeudIntrouvable) {
		t.Errorf("attendu ErrNoeudIntrouvable, obtenu %v", err)
	}
}

func TestHierarchieService_ListModules(t *testing.T) {
	svc, mocks := setupTestHierarchieService()
	ctx := context.Background()
	etab := seedEtabRegionale(t, mocks)

	branche, _ := svc.CreateBranche(ctx, &dto.CreateNodeRequest{
		Code: "INF", DesignationFr: "Informatique", DesignationAr: "إعلام آلي", IDParent: etab.ID,
	})
	specialite, _ := svc.CreateSpecialite(ctx, &dto.CreateNodeRequest{
		Code: "DEV", DesignationFr: "Développement", DesignationAr: "تطوير", IDParent: branche.ID,
	})
	module, err := svc.CreateModule(ctx, &dto.CreateNodeRequest{
		Code: "ALGO", DesignationFr: "Algorithmique", DesignationAr: "خوارزميات", IDParent: specialite.ID,
	})
	if err != nil {
		t.Fatalf("CreateModule: %v", err)
	}

	liste, err := svc.ListModules(ctx, specialite.ID)
	if err != nil {
		t.Fatalf("ListModules: %v", err)
	}
	if len(liste) != 1 || liste[0].ID != module.ID {
		t.Errorf("liste inattendue: %+v", liste)
	}
}
