package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
)

// Mocks en mémoire des repositories, indexés par map. Chaque mock applique
// les mêmes conventions que l'implémentation GORM : gorm.ErrRecordNotFound
// pour les absences, identifiants générés à la création quand ils manquent.

var mockSeq int

func nextID(prefix string) string {
	mockSeq++
	return fmt.Sprintf("%s-%04d", prefix, mockSeq)
}

// testMocks regroupe les mocks pour que les tests accèdent directement
// aux maps (semer des lignes, compter les dépendants).
type testMocks struct {
	compte         *mockCompteRepo
	stagiaire      *mockStagiaireRepo
	enseignant     *mockEnseignantRepo
	etabNationale  *mockEtabNationaleRepo
	etabRegionale  *mockEtabRegionaleRepo
	etabFormation  *mockEtabFormationRepo
	branche        *mockBrancheRepo
	specialite     *mockSpecialiteRepo
	module         *mockModuleRepo
	grade          *mockGradeRepo
	diplome        *mockDiplomeRepo
	mode           *mockModeRepo
	offre          *mockOffreRepo
	cours          *mockCoursRepo
	memoire        *mockMemoireRepo
	programme      *mockProgrammeRepo
	ensModule      *mockEnsModuleRepo
	inscription    *mockInscriptionRepo
	specialiteEtab *mockSpecialiteEtabRepo
}

// newTestRepository construit un agrégat de repositories entièrement mocké.
// L'agrégat n'a pas de base : Transaction exécute fn sur place.
func newTestRepository() (*repository.Repository, *testMocks) {
	m := &testMocks{
		compte:         newMockCompteRepo(),
		stagiaire:      newMockStagiaireRepo(),
		enseignant:     newMockEnseignantRepo(),
		etabNationale:  newMockEtabNationaleRepo(),
		etabRegionale:  newMockEtabRegionaleRepo(),
		etabFormation:  newMockEtabFormationRepo(),
		branche:        newMockBrancheRepo(),
		specialite:     newMockSpecialiteRepo(),
		module:         newMockModuleRepo(),
		grade:          newMockGradeRepo(),
		diplome:        newMockDiplomeRepo(),
		mode:           newMockModeRepo(),
		offre:          newMockOffreRepo(),
		cours:          newMockCoursRepo(),
		memoire:        newMockMemoireRepo(),
		programme:      newMockProgrammeRepo(),
		ensModule:      newMockEnsModuleRepo(),
		inscription:    newMockInscriptionRepo(),
		specialiteEtab: newMockSpecialiteEtabRepo(),
	}
	repo := &repository.Repository{
		Compte:         m.compte,
		Stagiaire:      m.stagiaire,
		Enseignant:     m.enseignant,
		EtabNationale:  m.etabNationale,
		EtabRegionale:  m.etabRegionale,
		EtabFormation:  m.etabFormation,
		Branche:        m.branche,
		Specialite:     m.specialite,
		Module:         m.module,
		Grade:          m.grade,
		Diplome:        m.diplome,
		Mode:           m.mode,
		Offre:          m.offre,
		Cours:          m.cours,
		Memoire:        m.memoire,
		Programme:      m.programme,
		EnsModule:      m.ensModule,
		Inscription:    m.inscription,
		SpecialiteEtab: m.specialiteEtab,
	}
	return repo, m
}

// ── Mock CompteRepository ──

type mockCompteRepo struct {
	comptes map[string]*model.Compte
}

func newMockCompteRepo() *mockCompteRepo {
	return &mockCompteRepo{comptes: make(map[string]*model.Compte)}
}

func (m *mockCompteRepo) Create(_ context.Context, compte *model.Compte) error {
	if compte.ID == "" {
		compte.ID = nextID("cpt")
	}
	m.comptes[compte.ID] = compte
	return nil
}

func (m *mockCompteRepo) GetByID(_ context.Context, id string) (*model.Compte, error) {
	if c, ok := m.comptes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompteRepo) GetByUsername(_ context.Context, username string) (*model.Compte, error) {
	for _, c := range m.comptes {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompteRepo) Update(_ context.Context, compte *model.Compte) error {
	m.comptes[compte.ID] = compte
	return nil
}

func (m *mockCompteRepo) Delete(_ context.Context, id string) error {
	delete(m.comptes, id)
	return nil
}

func (m *mockCompteRepo) List(_ context.Context, _, _ int) ([]model.Compte, int64, error) {
	var result []model.Compte
	for _, c := range m.comptes {
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

// ── Mock StagiaireRepository ──

type mockStagiaireRepo struct {
	stagiaires map[string]*model.Stagiaire
}

func newMockStagiaireRepo() *mockStagiaireRepo {
	return &mockStagiaireRepo{stagiaires: make(map[string]*model.Stagiaire)}
}

func (m *mockStagiaireRepo) Create(_ context.Context, stagiaire *model.Stagiaire) error {
	if stagiaire.ID == "" {
		stagiaire.ID = nextID("stg")
	}
	m.stagiaires[stagiaire.ID] = stagiaire
	return nil
}

func (m *mockStagiaireRepo) GetByID(_ context.Context, id string) (*model.Stagiaire, error) {
	if s, ok := m.stagiaires[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) GetByEmail(_ context.Context, email string) (*model.Stagiaire, error) {
	for _, s := range m.stagiaires {
		if s.Email != nil && *s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) GetByCompteID(_ context.Context, compteID string) (*model.Stagiaire, error) {
	for _, s := range m.stagiaires {
		if s.IDCompte != nil && *s.IDCompte == compteID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStagiaireRepo) Update(_ context.Context, stagiaire *model.Stagiaire) error {
	m.stagiaires[stagiaire.ID] = stagiaire
	return nil
}

func (m *mockStagiaireRepo) Delete(_ context.Context, id string) error {
	delete(m.stagiaires, id)
	return nil
}

func (m *mockStagiaireRepo) List(_ context.Context, _, _ int) ([]model.Stagiaire, int64, error) {
	var result []model.Stagiaire
	for _, s := range m.stagiaires {
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

// ── Mock EnseignantRepository ──

type mockEnseignantRepo struct {
	enseignants map[string]*model.Enseignant
}

func newMockEnseignantRepo() *mockEnseignantRepo {
	return &mockEnseignantRepo{enseignants: make(map[string]*model.Enseignant)}
}

func (m *mockEnseignantRepo) Create(_ context.Context, enseignant *model.Enseignant) error {
	if enseignant.ID == "" {
		enseignant.ID = nextID("ens")
	}
	m.enseignants[enseignant.ID] = enseignant
	return nil
}

func (m *mockEnseignantRepo) GetByID(_ context.Context, id string) (*model.Enseignant, error) {
	if e, ok := m.enseignants[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnseignantRepo) GetByEmail(_ context.Context, email string) (*model.Enseignant, error) {
	for _, e := range m.enseignants {
		if e.Email != nil && *e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnseignantRepo) GetByCompteID(_ context.Context, compteID string) (*model.Enseignant, error) {
	for _, e := range m.enseignants {
		if e.IDCompte != nil && *e.IDCompte == compteID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnseignantRepo) Update(_ context.Context, enseignant *model.Enseignant) error {
	m.enseignants[enseignant.ID] = enseignant
	return nil
}

func (m *mockEnseignantRepo) Delete(_ context.Context, id string) error {
	delete(m.enseignants, id)
	return nil
}

func (m *mockEnseignantRepo) List(_ context.Context, _, _ int) ([]model.Enseignant, int64, error) {
	var result []model.Enseignant
	for _, e := range m.enseignants {
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

// ── Mock EtabNationaleRepository ──

type mockEtabNationaleRepo struct {
	etabs map[string]*model.EtablissementNationale
}

func newMockEtabNationaleRepo() *mockEtabNationaleRepo {
	return &mockEtabNationaleRepo{etabs: make(map[string]*model.EtablissementNationale)}
}

func (m *mockEtabNationaleRepo) Create(_ context.Context, etab *model.EtablissementNationale) error {
	if etab.ID == "" {
		etab.ID = nextID("etn")
	}
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabNationaleRepo) GetByID(_ context.Context, id string) (*model.EtablissementNationale, error) {
	if e, ok := m.etabs[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabNationaleRepo) GetByCode(_ context.Context, code string) (*model.EtablissementNationale, error) {
	for _, e := range m.etabs {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabNationaleRepo) GetByCompteID(_ context.Context, compteID string) (*model.EtablissementNationale, error) {
	for _, e := range m.etabs {
		if e.IDCompte != nil && *e.IDCompte == compteID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabNationaleRepo) Update(_ context.Context, etab *model.EtablissementNationale) error {
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabNationaleRepo) Delete(_ context.Context, id string) error {
	delete(m.etabs, id)
	return nil
}

func (m *mockEtabNationaleRepo) List(_ context.Context) ([]model.EtablissementNationale, error) {
	var result []model.EtablissementNationale
	for _, e := range m.etabs {
		result = append(result, *e)
	}
	return result, nil
}

// ── Mock EtabRegionaleRepository ──

type mockEtabRegionaleRepo struct {
	etabs      map[string]*model.EtablissementRegionale
	dependants map[string]int64
}

func newMockEtabRegionaleRepo() *mockEtabRegionaleRepo {
	return &mockEtabRegionaleRepo{
		etabs:      make(map[string]*model.EtablissementRegionale),
		dependants: make(map[string]int64),
	}
}

func (m *mockEtabRegionaleRepo) Create(_ context.Context, etab *model.EtablissementRegionale) error {
	if etab.ID == "" {
		etab.ID = nextID("etr")
	}
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabRegionaleRepo) GetByID(_ context.Context, id string) (*model.EtablissementRegionale, error) {
	if e, ok := m.etabs[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabRegionaleRepo) GetByCode(_ context.Context, code string) (*model.EtablissementRegionale, error) {
	for _, e := range m.etabs {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabRegionaleRepo) GetByCompteID(_ context.Context, compteID string) (*model.EtablissementRegionale, error) {
	for _, e := range m.etabs {
		if e.IDCompte != nil && *e.IDCompte == compteID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabRegionaleRepo) Update(_ context.Context, etab *model.EtablissementRegionale) error {
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabRegionaleRepo) Delete(_ context.Context, id string) error {
	delete(m.etabs, id)
	return nil
}

func (m *mockEtabRegionaleRepo) ListByNationale(_ context.Context, idNationale string) ([]model.EtablissementRegionale, error) {
	var result []model.EtablissementRegionale
	for _, e := range m.etabs {
		if e.IDEtabNationale == idNationale {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEtabRegionaleRepo) CountDependents(_ context.Context, id string) (int64, error) {
	return m.dependants[id], nil
}

// ── Mock EtabFormationRepository ──

type mockEtabFormationRepo struct {
	etabs map[string]*model.EtablissementFormation
}

func newMockEtabFormationRepo() *mockEtabFormationRepo {
	return &mockEtabFormationRepo{etabs: make(map[string]*model.EtablissementFormation)}
}

func (m *mockEtabFormationRepo) Create(_ context.Context, etab *model.EtablissementFormation) error {
	if etab.ID == "" {
		etab.ID = nextID("etf")
	}
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabFormationRepo) GetByID(_ context.Context, id string) (*model.EtablissementFormation, error) {
	if e, ok := m.etabs[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabFormationRepo) GetByCode(_ context.Context, code string) (*model.EtablissementFormation, error) {
	for _, e := range m.etabs {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabFormationRepo) GetByCompteID(_ context.Context, compteID string) (*model.EtablissementFormation, error) {
	for _, e := range m.etabs {
		if e.IDCompte != nil && *e.IDCompte == compteID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtabFormationRepo) Update(_ context.Context, etab *model.EtablissementFormation) error {
	m.etabs[etab.ID] = etab
	return nil
}

func (m *mockEtabFormationRepo) Delete(_ context.Context, id string) error {
	delete(m.etabs, id)
	return nil
}

func (m *mockEtabFormationRepo) ListByRegionale(_ context.Context, idRegionale string) ([]model.EtablissementFormation, error) {
	var result []model.EtablissementFormation
	for _, e := range m.etabs {
		if e.IDEtabRegionale == idRegionale {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEtabFormationRepo) List(_ context.Context, _, _ int) ([]model.EtablissementFormation, int64, error) {
	var result []model.EtablissementFormation
	for _, e := range m.etabs {
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

// ── Mock BrancheRepository ──

type mockBrancheRepo struct {
	branches   map[string]*model.Branche
	dependants map[string]int64
}

func newMockBrancheRepo() *mockBrancheRepo {
	return &mockBrancheRepo{
		branches:   make(map[string]*model.Branche),
		dependants: make(map[string]int64),
	}
}

func (m *mockBrancheRepo) Create(_ context.Context, branche *model.Branche) error {
	if branche.ID == "" {
		branche.ID = nextID("brn")
	}
	m.branches[branche.ID] = branche
	return nil
}

func (m *mockBrancheRepo) GetByID(_ context.Context, id string) (*model.Branche, error) {
	if b, ok := m.branches[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBrancheRepo) GetByCode(_ context.Context, code string) (*model.Branche, error) {
	for _, b := range m.branches {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBrancheRepo) Update(_ context.Context, branche *model.Branche) error {
	m.branches[branche.ID] = branche
	return nil
}

func (m *mockBrancheRepo) Delete(_ context.Context, id string) error {
	delete(m.branches, id)
	return nil
}

func (m *mockBrancheRepo) ListByEtabRegionale(_ context.Context, idEtab string) ([]model.Branche, error) {
	var result []model.Branche
	for _, b := range m.branches {
		if b.IDEtabRegionale == idEtab {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBrancheRepo) CountDependents(_ context.Context, id string) (int64, error) {
	return m.dependants[id], nil
}

// ── Mock SpecialiteRepository ──

type mockSpecialiteRepo struct {
	specialites map[string]*model.Specialite
	dependants  map[string]int64
}

func newMockSpecialiteRepo() *mockSpecialiteRepo {
	return &mockSpecialiteRepo{
		specialites: make(map[string]*model.Specialite),
		dependants:  make(map[string]int64),
	}
}

func (m *mockSpecialiteRepo) Create(_ context.Context, specialite *model.Specialite) error {
	if specialite.ID == "" {
		specialite.ID = nextID("spc")
	}
	m.specialites[specialite.ID] = specialite
	return nil
}

func (m *mockSpecialiteRepo) GetByID(_ context.Context, id string) (*model.Specialite, error) {
	if s, ok := m.specialites[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialiteRepo) GetByCode(_ context.Context, code string) (*model.Specialite, error) {
	for _, s := range m.specialites {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialiteRepo) Update(_ context.Context, specialite *model.Specialite) error {
	m.specialites[specialite.ID] = specialite
	return nil
}

func (m *mockSpecialiteRepo) Delete(_ context.Context, id string) error {
	delete(m.specialites, id)
	return nil
}

func (m *mockSpecialiteRepo) ListByBranche(_ context.Context, idBranche string) ([]model.Specialite, error) {
	var result []model.Specialite
	for _, s := range m.specialites {
		if s.IDBranche == idBranche {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSpecialiteRepo) CountDependents(_ context.Context, id string) (int64, error) {
	return m.dependants[id], nil
}

// ── Mock ModuleRepository ──

type mockModuleRepo struct {
	modules    map[string]*model.Module
	dependants map[string]int64
}

func newMockModuleRepo() *mockModuleRepo {
	return &mockModuleRepo{
		modules:    make(map[string]*model.Module),
		dependants: make(map[string]int64),
	}
}

func (m *mockModuleRepo) Create(_ context.Context, module *model.Module) error {
	if module.ID == "" {
		module.ID = nextID("mod")
	}
	m.modules[module.ID] = module
	return nil
}

func (m *mockModuleRepo) GetByID(_ context.Context, id string) (*model.Module, error) {
	if mod, ok := m.modules[id]; ok {
		return mod, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleRepo) GetByCode(_ context.Context, code string) (*model.Module, error) {
	for _, mod := range m.modules {
		if mod.Code == code {
			return mod, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleRepo) Update(_ context.Context, module *model.Module) error {
	m.modules[module.ID] = module
	return nil
}

func (m *mockModuleRepo) Delete(_ context.Context, id string) error {
	delete(m.modules, id)
	return nil
}

func (m *mockModuleRepo) ListBySpecialite(_ context.Context, idSpecialite string) ([]model.Module, error) {
	var result []model.Module
	for _, mod := range m.modules {
		if mod.IDSpecialite == idSpecialite {
			result = append(result, *mod)
		}
	}
	return result, nil
}

func (m *mockModuleRepo) CountDependents(_ context.Context, id string) (int64, error) {
	return m.dependants[id], nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	grades map[string]*model.Grade
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{grades: make(map[string]*model.Grade)}
}

func (m *mockGradeRepo) Create(_ context.Context, grade *model.Grade) error {
	if grade.ID == "" {
		grade.ID = nextID("grd")
	}
	m.grades[grade.ID] = grade
	return nil
}

func (m *mockGradeRepo) GetByID(_ context.Context, id string) (*model.Grade, error) {
	if g, ok := m.grades[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) GetByCode(_ context.Context, code string) (*model.Grade, error) {
	for _, g := range m.grades {
		if g.Code == code {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) Update(_ context.Context, grade *model.Grade) error {
	m.grades[grade.ID] = grade
	return nil
}

func (m *mockGradeRepo) Delete(_ context.Context, id string) error {
	delete(m.grades, id)
	return nil
}

func (m *mockGradeRepo) List(_ context.Context) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range m.grades {
		result = append(result, *g)
	}
	return result, nil
}

// ── Mock DiplomeRepository ──

type mockDiplomeRepo struct {
	diplomes map[string]*model.Diplome
}

func newMockDiplomeRepo() *mockDiplomeRepo {
	return &mockDiplomeRepo{diplomes: make(map[string]*model.Diplome)}
}

func (m *mockDiplomeRepo) Create(_ context.Context, diplome *model.Diplome) error {
	if diplome.ID == "" {
		diplome.ID = nextID("dpl")
	}
	m.diplomes[diplome.ID] = diplome
	return nil
}

func (m *mockDiplomeRepo) GetByID(_ context.Context, id string) (*model.Diplome, error) {
	if d, ok := m.diplomes[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiplomeRepo) GetByCode(_ context.Context, code string) (*model.Diplome, error) {
	for _, d := range m.diplomes {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiplomeRepo) Update(_ context.Context, diplome *model.Diplome) error {
	m.diplomes[diplome.ID] = diplome
	return nil
}

func (m *mockDiplomeRepo) Delete(_ context.Context, id string) error {
	delete(m.diplomes, id)
	return nil
}

func (m *mockDiplomeRepo) List(_ context.Context) ([]model.Diplome, error) {
	var result []model.Diplome
	for _, d := range m.diplomes {
		result = append(result, *d)
	}
	return result, nil
}

// ── Mock ModeFormationRepository ──

type mockModeRepo struct {
	modes map[string]*model.ModeFormation
}

func newMockModeRepo() *mockModeRepo {
	return &mockModeRepo{modes: make(map[string]*model.ModeFormation)}
}

func (m *mockModeRepo) Create(_ context.Context, mode *model.ModeFormation) error {
	if mode.ID == "" {
		mode.ID = nextID("mde")
	}
	m.modes[mode.ID] = mode
	return nil
}

func (m *mockModeRepo) GetByID(_ context.Context, id string) (*model.ModeFormation, error) {
	if md, ok := m.modes[id]; ok {
		return md, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModeRepo) GetByCode(_ context.Context, code string) (*model.ModeFormation, error) {
	for _, md := range m.modes {
		if md.Code == code {
			return md, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModeRepo) Update(_ context.Context, mode *model.ModeFormation) error {
	m.modes[mode.ID] = mode
	return nil
}

func (m *mockModeRepo) Delete(_ context.Context, id string) error {
	delete(m.modes, id)
	return nil
}

func (m *mockModeRepo) List(_ context.Context) ([]model.ModeFormation, error) {
	var result []model.ModeFormation
	for _, md := range m.modes {
		result = append(result, *md)
	}
	return result, nil
}

// ── Mock OffreRepository ──

type mockOffreRepo struct {
	offres map[string]*model.Offre
}

func newMockOffreRepo() *mockOffreRepo {
	return &mockOffreRepo{offres: make(map[string]*model.Offre)}
}

func (m *mockOffreRepo) Create(_ context.Context, offre *model.Offre) error {
	if offre.ID == "" {
		offre.ID = nextID("off")
	}
	m.offres[offre.ID] = offre
	return nil
}

func (m *mockOffreRepo) GetByID(_ context.Context, id string) (*model.Offre, error) {
	if o, ok := m.offres[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOffreRepo) GetByCombinaison(_ context.Context, idSpecialite, idEtab, idDiplome, idMode string) (*model.Offre, error) {
	for _, o := range m.offres {
		if o.IDSpecialite == idSpecialite && o.IDEtabFormation == idEtab &&
			o.IDDiplome == idDiplome && o.IDMode == idMode {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOffreRepo) Update(_ context.Context, offre *model.Offre) error {
	m.offres[offre.ID] = offre
	return nil
}

func (m *mockOffreRepo) Delete(_ context.Context, id string) error {
	delete(m.offres, id)
	return nil
}

func (m *mockOffreRepo) ListByEtab(_ context.Context, idEtab string, _, _ int) ([]model.Offre, int64, error) {
	var result []model.Offre
	for _, o := range m.offres {
		if o.IDEtabFormation == idEtab {
			result = append(result, *o)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockOffreRepo) List(_ context.Context, _, _ int) ([]model.Offre, int64, error) {
	var result []model.Offre
	for _, o := range m.offres {
		result = append(result, *o)
	}
	return result, int64(len(result)), nil
}

// ── Mock CoursRepository ──

type mockCoursRepo struct {
	cours map[string]*model.Cours
}

func newMockCoursRepo() *mockCoursRepo {
	return &mockCoursRepo{cours: make(map[string]*model.Cours)}
}

func (m *mockCoursRepo) Create(_ context.Context, cours *model.Cours) error {
	if cours.ID == "" {
		cours.ID = nextID("crs")
	}
	m.cours[cours.ID] = cours
	return nil
}

func (m *mockCoursRepo) GetByID(_ context.Context, id string) (*model.Cours, error) {
	if c, ok := m.cours[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCoursRepo) GetByCode(_ context.Context, code string) (*model.Cours, error) {
	for _, c := range m.cours {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCoursRepo) Update(_ context.Context, cours *model.Cours) error {
	m.cours[cours.ID] = cours
	return nil
}

func (m *mockCoursRepo) Delete(_ context.Context, id string) error {
	delete(m.cours, id)
	return nil
}

func (m *mockCoursRepo) ListByModule(_ context.Context, idModule string) ([]model.Cours, error) {
	var result []model.Cours
	for _, c := range m.cours {
		if c.IDModule == idModule {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCoursRepo) ListByEnseignant(_ context.Context, idEnseignant string) ([]model.Cours, error) {
	var result []model.Cours
	for _, c := range m.cours {
		if c.IDEnseignant == idEnseignant {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCoursRepo) ListByStatus(_ context.Context, status string, _, _ int) ([]model.Cours, int64, error) {
	var result []model.Cours
	for _, c := range m.cours {
		if c.Status == status {
			result = append(result, *c)
		}
	}
	return result, int64(len(result)), nil
}

// ── Mock MemoireRepository ──

type mockMemoireRepo struct {
	memoires map[string]*model.Memoire
}

func newMockMemoireRepo() *mockMemoireRepo {
	return &mockMemoireRepo{memoires: make(map[string]*model.Memoire)}
}

func (m *mockMemoireRepo) Create(_ context.Context, memoire *model.Memoire) error {
	if memoire.ID == "" {
		memoire.ID = nextID("mem")
	}
	m.memoires[memoire.ID] = memoire
	return nil
}

func (m *mockMemoireRepo) GetByID(_ context.Context, id string) (*model.Memoire, error) {
	if mem, ok := m.memoires[id]; ok {
		return mem, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemoireRepo) Update(_ context.Context, memoire *model.Memoire) error {
	m.memoires[memoire.ID] = memoire
	return nil
}

func (m *mockMemoireRepo) Delete(_ context.Context, id string) error {
	delete(m.memoires, id)
	return nil
}

func (m *mockMemoireRepo) ListByStagiaire(_ context.Context, idStagiaire string) ([]model.Memoire, error) {
	var result []model.Memoire
	for _, mem := range m.memoires {
		if mem.IDStagiaire == idStagiaire {
			result = append(result, *mem)
		}
	}
	return result, nil
}

func (m *mockMemoireRepo) ListByEncadreur(_ context.Context, idEncadreur string) ([]model.Memoire, error) {
	var result []model.Memoire
	for _, mem := range m.memoires {
		if mem.IDEncadreur != nil && *mem.IDEncadreur == idEncadreur {
			result = append(result, *mem)
		}
	}
	return result, nil
}

func (m *mockMemoireRepo) ListByStatus(_ context.Context, status string, _, _ int) ([]model.Memoire, int64, error) {
	var result []model.Memoire
	for _, mem := range m.memoires {
		if mem.Status == status {
			result = append(result, *mem)
		}
	}
	return result, int64(len(result)), nil
}

// ── Mock ProgrammeRepository ──

type mockProgrammeRepo struct {
	programmes map[string]*model.Programme
}

func newMockProgrammeRepo() *mockProgrammeRepo {
	return &mockProgrammeRepo{programmes: make(map[string]*model.Programme)}
}

func (m *mockProgrammeRepo) Create(_ context.Context, programme *model.Programme) error {
	if programme.ID == "" {
		programme.ID = nextID("prg")
	}
	m.programmes[programme.ID] = programme
	return nil
}

func (m *mockProgrammeRepo) GetByID(_ context.Context, id string) (*model.Programme, error) {
	if p, ok := m.programmes[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgrammeRepo) GetByCode(_ context.Context, code string) (*model.Programme, error) {
	for _, p := range m.programmes {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgrammeRepo) Update(_ context.Context, programme *model.Programme) error {
	m.programmes[programme.ID] = programme
	return nil
}

func (m *mockProgrammeRepo) Delete(_ context.Context, id string) error {
	delete(m.programmes, id)
	return nil
}

func (m *mockProgrammeRepo) ListByEtabRegionale(_ context.Context, idEtab string) ([]model.Programme, error) {
	var result []model.Programme
	for _, p := range m.programmes {
		if p.IDEtabRegionale == idEtab {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockProgrammeRepo) ListByStatus(_ context.Context, status string, _, _ int) ([]model.Programme, int64, error) {
	var result []model.Programme
	for _, p := range m.programmes {
		if p.Status == status {
			result = append(result, *p)
		}
	}
	return result, int64(len(result)), nil
}

// ── Mock EnsModuleRepository ──

type mockEnsModuleRepo struct {
	affectations map[string]*model.EnsModule
}

func newMockEnsModuleRepo() *mockEnsModuleRepo {
	return &mockEnsModuleRepo{affectations: make(map[string]*model.EnsModule)}
}

func cleEnsModule(idModule, idEnseignant, annee string) string {
	return idModule + "|" + idEnseignant + "|" + annee
}

func (m *mockEnsModuleRepo) Create(_ context.Context, affectation *model.EnsModule) error {
	m.affectations[cleEnsModule(affectation.IDModule, affectation.IDEnseignant, affectation.AnneeScolaire)] = affectation
	return nil
}

func (m *mockEnsModuleRepo) GetByKey(_ context.Context, idModule, idEnseignant, anneeScolaire string) (*model.EnsModule, error) {
	if a, ok := m.affectations[cleEnsModule(idModule, idEnseignant, anneeScolaire)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnsModuleRepo) Update(_ context.Context, affectation *model.EnsModule) error {
	m.affectations[cleEnsModule(affectation.IDModule, affectation.IDEnseignant, affectation.AnneeScolaire)] = affectation
	return nil
}

func (m *mockEnsModuleRepo) Delete(_ context.Context, idModule, idEnseignant, anneeScolaire string) error {
	delete(m.affectations, cleEnsModule(idModule, idEnseignant, anneeScolaire))
	return nil
}

func (m *mockEnsModuleRepo) ListByEnseignant(_ context.Context, idEnseignant string) ([]model.EnsModule, error) {
	var result []model.EnsModule
	for _, a := range m.affectations {
		if a.IDEnseignant == idEnseignant {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockEnsModuleRepo) ListByModule(_ context.Context, idModule string) ([]model.EnsModule, error) {
	var result []model.EnsModule
	for _, a := range m.affectations {
		if a.IDModule == idModule {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockEnsModuleRepo) ListByAnnee(_ context.Context, anneeScolaire string) ([]model.EnsModule, error) {
	var result []model.EnsModule
	for _, a := range m.affectations {
		if a.AnneeScolaire == anneeScolaire {
			result = append(result, *a)
		}
	}
	return result, nil
}

// ── Mock InscriptionRepository ──

type mockInscriptionRepo struct {
	inscriptions map[string]*model.Inscription
}

func newMockInscriptionRepo() *mockInscriptionRepo {
	return &mockInscriptionRepo{inscriptions: make(map[string]*model.Inscription)}
}

func (m *mockInscriptionRepo) Create(_ context.Context, inscription *model.Inscription) error {
	if inscription.ID == "" {
		inscription.ID = nextID("ins")
	}
	m.inscriptions[inscription.ID] = inscription
	return nil
}

func (m *mockInscriptionRepo) GetByID(_ context.Context, id string) (*model.Inscription, error) {
	if i, ok := m.inscriptions[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInscriptionRepo) GetByStagiaireEtOffre(_ context.Context, idStagiaire, idOffre string) (*model.Inscription, error) {
	for _, i := range m.inscriptions {
		if i.IDStagiaire == idStagiaire && i.IDOffre == idOffre {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInscriptionRepo) Update(_ context.Context, inscription *model.Inscription) error {
	m.inscriptions[inscription.ID] = inscription
	return nil
}

func (m *mockInscriptionRepo) Delete(_ context.Context, id string) error {
	delete(m.inscriptions, id)
	return nil
}

func (m *mockInscriptionRepo) ListByOffre(_ context.Context, idOffre string) ([]model.Inscription, error) {
	var result []model.Inscription
	for _, i := range m.inscriptions {
		if i.IDOffre == idOffre {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (m *mockInscriptionRepo) ListByStagiaire(_ context.Context, idStagiaire string) ([]model.Inscription, error) {
	var result []model.Inscription
	for _, i := range m.inscriptions {
		if i.IDStagiaire == idStagiaire {
			result = append(result, *i)
		}
	}
	return result, nil
}

// ── Mock SpecialiteEtabRepository ──

type mockSpecialiteEtabRepo struct {
	liens map[string]*model.SpecialiteEtab
}

func newMockSpecialiteEtabRepo() *mockSpecialiteEtabRepo {
	return &mockSpecialiteEtabRepo{liens: make(map[string]*model.SpecialiteEtab)}
}

func (m *mockSpecialiteEtabRepo) Create(_ context.Context, lien *model.SpecialiteEtab) error {
	if lien.ID == "" {
		lien.ID = nextID("lse")
	}
	m.liens[lien.ID] = lien
	return nil
}

func (m *mockSpecialiteEtabRepo) GetByID(_ context.Context, id string) (*model.SpecialiteEtab, error) {
	if l, ok := m.liens[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialiteEtabRepo) GetByPaire(_ context.Context, idSpecialite, idEtab string) (*model.SpecialiteEtab, error) {
	for _, l := range m.liens {
		if l.IDSpecialite == idSpecialite && l.IDEtabFormation == idEtab {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecialiteEtabRepo) Update(_ context.Context, lien *model.SpecialiteEtab) error {
	m.liens[lien.ID] = lien
	return nil
}

func (m *mockSpecialiteEtabRepo) Delete(_ context.Context, id string) error {
	delete(m.liens, id)
	return nil
}

func (m *mockSpecialiteEtabRepo) ListByEtab(_ context.Context, idEtab string) ([]model.SpecialiteEtab, error) {
	var result []model.SpecialiteEtab
	for _, l := range m.liens {
		if l.IDEtabFormation == idEtab {
			result = append(result, *l)
		}
	}
	return result, nil
}
