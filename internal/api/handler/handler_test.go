package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}

// ── Mock CompteService ──

type mockCompteService struct {
	createResult *dto.CompteResponse
	createErr    error
	getResult    *dto.CompteResponse
	getErr       error
	listResult   []dto.CompteResponse
	listTotal    int64
	listErr      error
	lierErr      error
	delierErr    error
}

func (m *mockCompteService) CreateCompte(_ context.Context, _ *dto.SignupRequest) (*dto.CompteResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockCompteService) GetByID(_ context.Context, _ string) (*dto.CompteResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockCompteService) List(_ context.Context, _, _ int) ([]dto.CompteResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockCompteService) LierProfil(_ context.Context, _ service.ProfilBinder, _, _ string) error {
	return m.lierErr
}
func (m *mockCompteService) DelierProfil(_ context.Context, _ service.ProfilBinder, _ string) error {
	return m.delierErr
}

// ── Mock StagiaireService ──

type mockStagiaireService struct {
	profil     model.Profil
	profilErr  error
	getResult  *dto.PersonneResponse
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	listResult []dto.PersonneResponse
	listTotal  int64
}

func (m *mockStagiaireService) GetProfil(_ context.Context, _ string) (model.Profil, error) {
	return m.profil, m.profilErr
}
func (m *mockStagiaireService) ProfilParCompte(_ context.Context, _ string) (model.Profil, error) {
	return m.profil, m.profilErr
}
func (m *mockStagiaireService) SauvegarderProfil(_ context.Context, _ model.Profil) error {
	return nil
}
func (m *mockStagiaireService) Create(_ context.Context, _ *dto.CreateStagiaireRequest) (*dto.PersonneResponse, error) {
	return m.getResult, m.createErr
}
func (m *mockStagiaireService) GetByID(_ context.Context, _ string) (*dto.PersonneResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockStagiaireService) Update(_ context.Context, _ string, _ *dto.UpdatePersonneRequest) (*dto.PersonneResponse, error) {
	return m.getResult, m.updateErr
}
func (m *mockStagiaireService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}
func (m *mockStagiaireService) List(_ context.Context, _, _ int) ([]dto.PersonneResponse, int64, error) {
	return m.listResult, m.listTotal, nil
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportInscriptions(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportCalendrier(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Mock HierarchieService ──

type mockHierarchieService struct {
	node       *dto.NodeResponse
	nodeErr    error
	preview    *dto.DeleteNodePreview
	deleteErr  error
	listResult []dto.NodeResponse
	listErr    error
}

func (m *mockHierarchieService) CreateBranche(_ context.Context, _ *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) CreateSpecialite(_ context.Context, _ *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) CreateModule(_ context.Context, _ *dto.CreateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) UpdateBranche(_ context.Context, _ string, _ *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) UpdateSpecialite(_ context.Context, _ string, _ *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) UpdateModule(_ context.Context, _ string, _ *dto.UpdateNodeRequest) (*dto.NodeResponse, error) {
	return m.node, m.nodeErr
}
func (m *mockHierarchieService) DeleteBranche(_ context.Context, _ string, _ bool) (*dto.DeleteNodePreview, error) {
	return m.preview, m.deleteErr
}
func (m *mockHierarchieService) DeleteSpecialite(_ context.Context, _ string, _ bool) (*dto.DeleteNodePreview, error) {
	return m.preview, m.deleteErr
}
func (m *mockHierarchieService) DeleteModule(_ context.Context, _ string, _ bool) (*dto.DeleteNodePreview, error) {
	return m.preview, m.deleteErr
}
func (m *mockHierarchieService) ListBranches(_ context.Context, _ string) ([]dto.NodeResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockHierarchieService) ListSpecialites(_ context.Context, _ string) ([]dto.NodeResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockHierarchieService) ListModules(_ context.Context, _ string) ([]dto.NodeResponse, error) {
	return m.listResult, m.listErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func setAuth(c *gin.Context) {
	c.Set("compte_id", "compte-test")
	c.Set("role", model.RoleStagiaire)
	c.Set("claims", &jwt.Claims{CompteID: "compte-test", Role: model.RoleStagiaire, TokenType: "access"})
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access-de-test",
			RefreshToken: "refresh-de-test",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "s.benali",
		Password: "MotDePasse1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("attendu code 0, obtenu %d", resp.Code)
	}
}

func TestAuthHandler_Login_JSONInvalide(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("pas du json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}

func TestAuthHandler_Login_IdentifiantsInvalides(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrIdentifiantsInvalides}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "s.benali",
		Password: "mauvais",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("attendu 401, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("attendu code 11001, obtenu %d", resp.Code)
	}
}

func TestAuthHandler_Refresh_TokenInvalide(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrRefreshInvalide}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(dto.RefreshRequest{
		RefreshToken: "expire",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.Refresh)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("attendu 401, obtenu %d", w.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	mock := &mockCompteService{
		createResult: &dto.CompteResponse{ID: "compte-1", Username: "s.benali", Role: model.RoleStagiaire},
	}
	h := NewAuthHandler(&mockAuthService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/signup", jsonBody(dto.SignupRequest{
		Username: "s.benali",
		Password: "MotDePasse1",
		Role:     model.RoleStagiaire,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("attendu 201, obtenu %d", w.Code)
	}
}

func TestAuthHandler_Signup_UsernameExiste(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, &mockCompteService{createErr: service.ErrUsernameExiste})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/signup", jsonBody(dto.SignupRequest{
		Username: "s.benali",
		Password: "MotDePasse1",
		Role:     model.RoleStagiaire,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("attendu 409, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeConflit {
		t.Errorf("attendu code %d, obtenu %d", codeConflit, resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Traduction des erreurs métier
// ═══════════════════════════════════════════════════════════

func TestCompteHandler_Create_Conflit(t *testing.T) {
	h := NewCompteHandler(&mockCompteService{createErr: service.ErrUsernameExiste})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/comptes", jsonBody(dto.SignupRequest{
		Username: "s.benali",
		Password: "MotDePasse1",
		Role:     model.RoleStagiaire,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/comptes", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("attendu 409, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeConflit {
		t.Errorf("attendu code %d, obtenu %d", codeConflit, resp.Code)
	}
}

func TestCompteHandler_GetByID_Introuvable(t *testing.T) {
	h := NewCompteHandler(&mockCompteService{getErr: service.ErrCompteIntrouvable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/comptes/inconnu", nil)

	r := gin.New()
	r.GET("/comptes/:id", h.GetByID)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}

func TestRepondreErreur_ErreurInconnueEn500(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	repondreErreur(c, context.DeadlineExceeded)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("attendu 500, obtenu %d", w.Code)
	}
}

func TestRepondreErreur_MessageSansPrefixeTechnique(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	repondreErreur(c, apperr.Validation("Stagiaire", "telephone", "format de téléphone invalide"))

	resp := parseResponse(w)
	if resp.Message != "format de téléphone invalide" {
		t.Errorf("message inattendu: %q", resp.Message)
	}
}

// ═══════════════════════════════════════════════════════════
// Suppression en cascade avec confirmation
// ═══════════════════════════════════════════════════════════

func TestHierarchieHandler_Delete_SansConfirmation(t *testing.T) {
	h := NewHierarchieHandler(&mockHierarchieService{
		preview:   &dto.DeleteNodePreview{Dependants: 4, Supprime: false},
		deleteErr: service.ErrSuppressionNonConfirmee,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/specialites/spec-1", nil)

	r := gin.New()
	r.DELETE("/specialites/:id", h.DeleteSpecialite)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("attendu 409, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeConfirmation {
		t.Errorf("attendu code %d, obtenu %d", codeConfirmation, resp.Code)
	}
	// l'aperçu doit accompagner le refus
	data, _ := json.Marshal(resp.Data)
	var preview dto.DeleteNodePreview
	json.Unmarshal(data, &preview)
	if preview.Dependants != 4 || preview.Supprime {
		t.Errorf("aperçu inattendu: %+v", preview)
	}
}

func TestHierarchieHandler_Delete_Confirmee(t *testing.T) {
	h := NewHierarchieHandler(&mockHierarchieService{
		preview: &dto.DeleteNodePreview{Dependants: 4, Supprime: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/specialites/spec-1?confirme=true", nil)

	r := gin.New()
	r.DELETE("/specialites/:id", h.DeleteSpecialite)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Résolution du profil depuis le compte authentifié
// ═══════════════════════════════════════════════════════════

func TestStagiaireHandler_Me_Success(t *testing.T) {
	email := "benali.mohamed@exemple.dz"
	mock := &mockStagiaireService{
		profil:    &model.Stagiaire{ID: "stag-1", NomFr: "BENALI", PrenomFr: "Mohamed"},
		getResult: &dto.PersonneResponse{ID: "stag-1", NomFr: "BENALI", PrenomFr: "Mohamed", Email: &email},
	}
	h := NewStagiaireHandler(mock, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stagiaires/moi", nil)

	r := gin.New()
	r.GET("/stagiaires/moi", func(c *gin.Context) {
		setAuth(c)
		h.Me(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

func TestStagiaireHandler_Me_SansProfil(t *testing.T) {
	h := NewStagiaireHandler(&mockStagiaireService{profilErr: service.ErrProfilIntrouvable}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stagiaires/moi", nil)

	r := gin.New()
	r.GET("/stagiaires/moi", func(c *gin.Context) {
		setAuth(c)
		h.Me(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}

func TestStagiaireHandler_Me_NonAuthentifie(t *testing.T) {
	h := NewStagiaireHandler(&mockStagiaireService{}, &mockCompteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stagiaires/moi", nil)

	r := gin.New()
	r.GET("/stagiaires/moi", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("attendu 401, obtenu %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Inscriptions_EnTetes(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("contenu-xlsx"),
		filename: "inscriptions_offre-1.xlsx",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/offres/offre-1/export/inscriptions", nil)

	r := gin.New()
	r.GET("/offres/:id/export/inscriptions", h.Inscriptions)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("Content-Type inattendu: %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="inscriptions_offre-1.xlsx"` {
		t.Errorf("Content-Disposition inattendu: %q", cd)
	}
	if w.Body.String() != "contenu-xlsx" {
		t.Error("le corps doit porter le contenu du classeur tel quel")
	}
}

func TestExportHandler_Calendrier_OffreIntrouvable(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrOffreIntrouvable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/offres/inconnue/export/calendrier", nil)

	r := gin.New()
	r.GET("/offres/:id/export/calendrier", h.Calendrier)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}
