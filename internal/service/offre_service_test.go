package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
)

func setupTestOffreService() (OffreService, *testMocks) {
	repo, mocks := newTestRepository()
	return NewOffreService(repo, zap.NewNop()), mocks
}

// seedReferentsOffre sème les quatre référents exigés par une offre
func seedReferentsOffre(t *testing.T, mocks *testMocks) (sp *model.Specialite, etab *model.EtablissementFormation, di *model.Diplome, mo *model.ModeFormation) {
	t.Helper()
	ctx := context.Background()

	sp = &model.Specialite{Code: "DEV", DesignationFr: "Développement informatique", DesignationAr: "تطوير المعلوماتية", IDBranche: "brn-1"}
	etab = &model.EtablissementFormation{Code: "CFPA-01", NomFr: "CFPA Birkhadem", IDEtabRegionale: "etr-1"}
	di = &model.Diplome{Code: "BTS", DesignationFr: "Brevet de technicien supérieur"}
	mo = &model.ModeFormation{Code: "PRES", DesignationFr: "Présentiel"}

	for _, err := range []error{
		mocks.specialite.Create(ctx, sp),
		mocks.etabFormation.Create(ctx, etab),
		mocks.diplome.Create(ctx, di),
		mocks.mode.Create(ctx, mo),
	} {
		if err != nil {
			t.Fatalf("seed référents: %v", err)
		}
	}
	return sp, etab, di, mo
}

func TestOffreService_Create_DemarreEnBrouillon(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, di, mo := seedReferentsOffre(t, mocks)

	resp, err := svc.Create(context.Background(), &dto.CreateOffreRequest{
		IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: mo.ID,
		DateDebut: strPtr("2026-09-01"), DateFin: strPtr("2027-06-30"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Statut != model.OffreBrouillon {
		t.Errorf("statut attendu brouillon, obtenu %q", resp.Statut)
	}
	if resp.DateDebut != "2026-09-01" || resp.DateFin != "2027-06-30" {
		t.Errorf("bornes inattendues: %+v", resp)
	}
}

func TestOffreService_Create_CombinaisonExiste(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, di, mo := seedReferentsOffre(t, mocks)
	ctx := context.Background()

	req := &dto.CreateOffreRequest{IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: mo.ID}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("première création: %v", err)
	}

	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrCombinaisonExiste) {
		t.Errorf("attendu ErrCombinaisonExiste, obtenu %v", err)
	}
}

func TestOffreService_Create_ReferentIntrouvable(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, di, mo := seedReferentsOffre(t, mocks)

	cas := []struct {
		nom     string
		req     dto.CreateOffreRequest
		attendu error
	}{
		{"spécialité", dto.CreateOffreRequest{IDSpecialite: "inconnu", IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: mo.ID}, ErrSpecialiteIntrouvable},
		{"établissement", dto.CreateOffreRequest{IDSpecialite: sp.ID, IDEtabFormation: "inconnu", IDDiplome: di.ID, IDMode: mo.ID}, ErrEtablissementIntrouvable},
		{"diplôme", dto.CreateOffreRequest{IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: "inconnu", IDMode: mo.ID}, ErrDiplomeIntrouvable},
		{"mode", dto.CreateOffreRequest{IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: "inconnu"}, ErrModeIntrouvable},
	}
	for _, c := range cas {
		if _, err := svc.Create(context.Background(), &c.req); !errors.Is(err, c.attendu) {
			t.Errorf("%s: attendu %v, obtenu %v", c.nom, c.attendu, err)
		}
	}
}

func TestOffreService_Create_DatesIncoherentes(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, di, mo := seedReferentsOffre(t, mocks)

	_, err := svc.Create(context.Background(), &dto.CreateOffreRequest{
		IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: mo.ID,
		DateDebut: strPtr("2027-06-30"), DateFin: strPtr("2026-09-01"),
	})
	if !errors.Is(err, ErrDatesIncoherentes) {
		t.Errorf("attendu ErrDatesIncoherentes, obtenu %v", err)
	}
}

func TestOffreService_CycleDeVie(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, di, mo := seedReferentsOffre(t, mocks)
	ctx := context.Background()

	offre, err := svc.Create(ctx, &dto.CreateOffreRequest{
		IDSpecialite: sp.ID, IDEtabFormation: etab.ID, IDDiplome: di.ID, IDMode: mo.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// brouillon → archivee : interdit, le cycle est linéaire
	if _, err := svc.Archiver(ctx, offre.ID); !errors.Is(err, ErrTransitionOffre) {
		t.Errorf("archivage depuis brouillon: attendu ErrTransitionOffre, obtenu %v", err)
	}

	active, err := svc.Activer(ctx, offre.ID)
	if err != nil {
		t.Fatalf("Activer: %v", err)
	}
	if active.Statut != model.OffreActive {
		t.Errorf("statut attendu active, obtenu %q", active.Statut)
	}

	// active → active : pas de transition sur place
	if _, err := svc.Activer(ctx, offre.ID); !errors.Is(err, ErrTransitionOffre) {
		t.Errorf("double activation: attendu ErrTransitionOffre, obtenu %v", err)
	}

	archivee, err := svc.Archiver(ctx, offre.ID)
	if err != nil {
		t.Fatalf("Archiver: %v", err)
	}
	if archivee.Statut != model.OffreArchivee {
		t.Errorf("statut attendu archivee, obtenu %q", archivee.Statut)
	}

	// archivee est terminal
	if _, err := svc.Activer(ctx, offre.ID); !errors.Is(err, ErrTransitionOffre) {
		t.Errorf("réactivation après archivage: attendu ErrTransitionOffre, obtenu %v", err)
	}
}

func TestOffreService_OuvrirSpecialite_PaireUnique(t *testing.T) {
	svc, mocks := setupTestOffreService()
	sp, etab, _, _ := seedReferentsOffre(t, mocks)
	ctx := context.Background()

	req := &dto.CreateSpecialiteEtabRequest{IDSpecialite: sp.ID, IDEtabFormation: etab.ID}
	lien, err := svc.OuvrirSpecialite(ctx, req)
	if err != nil {
		t.Fatalf("OuvrirSpecialite: %v", err)
	}
	if !lien.Actif {
		t.Error("le lien devait être actif")
	}

	if _, err := svc.OuvrirSpecialite(ctx, req); !errors.Is(err, ErrLienSpecialiteExiste) {
		t.Errorf("attendu ErrLienSpecialiteExiste, obtenu %v", err)
	}
}

func TestDesignationOffre(t *testing.T) {
	sp := &model.Specialite{DesignationFr: "Développement informatique", DesignationAr: "تطوير المعلوماتية"}
	di := &model.Diplome{DesignationFr: "Brevet de technicien supérieur"}

	if got := DesignationOffre(sp, di, "fr"); got != "Brevet de technicien supérieur - Développement informatique" {
		t.Errorf("désignation fr inattendue: %q", got)
	}
	// le diplôme n'a pas d'arabe : il retombe sur le français, la spécialité non
	if got := DesignationOffre(sp, di, "ar"); got != "Brevet de technicien supérieur - تطوير المعلوماتية" {
		t.Errorf("désignation ar inattendue: %q", got)
	}
	if got := DesignationOffre(nil, di, "fr"); got != "" {
		t.Errorf("désignation sans spécialité: %q", got)
	}
}

func TestDureeFormation(t *testing.T) {
	jour := func(s string) *time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		return &d
	}

	cas := []struct {
		nom     string
		debut   *time.Time
		fin     *time.Time
		attendu string
	}{
		{"borne manquante", jour("2026-09-01"), nil, ""},
		{"intervalle inversé", jour("2027-06-30"), jour("2026-09-01"), ""},
		{"moins de deux mois", jour("2026-09-01"), jour("2026-10-15"), "44 jours"},
		{"plusieurs mois", jour("2026-09-01"), jour("2027-06-30"), "10 mois"},
	}
	for _, c := range cas {
		if got := DureeFormation(c.debut, c.fin); got != c.attendu {
			t.Errorf("%s: attendu %q, obtenu %q", c.nom, c.attendu, got)
		}
	}
}
