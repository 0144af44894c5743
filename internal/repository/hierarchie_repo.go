package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// ── Branche ──

// BrancheRepository accès aux branches académiques
type BrancheRepository interface {
	Create(ctx context.Context, branche *model.Branche) error
	GetByID(ctx context.Context, id string) (*model.Branche, error)
	GetByCode(ctx context.Context, code string) (*model.Branche, error)
	Update(ctx context.Context, branche *model.Branche) error
	Delete(ctx context.Context, id string) error
	ListByEtabRegionale(ctx context.Context, idEtab string) ([]model.Branche, error)
	CountDependents(ctx context.Context, id string) (int64, error)
}

type brancheRepo struct {
	db *gorm.DB
}

// NewBrancheRepo crée le BrancheRepository GORM
func NewBrancheRepo(db *gorm.DB) BrancheRepository {
	return &brancheRepo{db: db}
}

func (r *brancheRepo) Create(ctx context.Context, branche *model.Branche) error {
	return r.db.WithContext(ctx).Create(branche).Error
}

func (r *brancheRepo) GetByID(ctx context.Context, id string) (*model.Branche, error) {
	var branche model.Branche
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&branche).Error; err != nil {
		return nil, err
	}
	return &branche, nil
}

func (r *brancheRepo) GetByCode(ctx context.Context, code string) (*model.Branche, error) {
	var branche model.Branche
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&branche).Error; err != nil {
		return nil, err
	}
	return &branche, nil
}

func (r *brancheRepo) Update(ctx context.Context, branche *model.Branche) error {
	return r.db.WithContext(ctx).Save(branche).Error
}

func (r *brancheRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Branche{}, "id = ?", id).Error
}

func (r *brancheRepo) ListByEtabRegionale(ctx context.Context, idEtab string) ([]model.Branche, error) {
	var branches []model.Branche
	if err := r.db.WithContext(ctx).
		Where("id_etab_regionale = ?", idEtab).
		Order("code").
		Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// CountDependents dénombre les spécialités et modules qui seraient
// supprimés en cascade avec la branche.
func (r *brancheRepo) CountDependents(ctx context.Context, id string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM specialites s WHERE s.id_branche = @id)
			+ (SELECT COUNT(*) FROM modules m
			     JOIN specialites s ON m.id_specialite = s.id
			    WHERE s.id_branche = @id)
			+ (SELECT COUNT(*) FROM offres o
			     JOIN specialites s ON o.id_specialite = s.id
			    WHERE s.id_branche = @id)`,
		map[string]interface{}{"id": id}).
		Scan(&total).Error
	return total, err
}

// ── Spécialité ──

// SpecialiteRepository accès aux spécialités
type SpecialiteRepository interface {
	Create(ctx context.Context, specialite *model.Specialite) error
	GetByID(ctx context.Context, id string) (*model.Specialite, error)
	GetByCode(ctx context.Context, code string) (*model.Specialite, error)
	Update(ctx context.Context, specialite *model.Specialite) error
	Delete(ctx context.Context, id string) error
	ListByBranche(ctx context.Context, idBranche string) ([]model.Specialite, error)
	CountDependents(ctx context.Context, id string) (int64, error)
}

type specialiteRepo struct {
	db *gorm.DB
}

// NewSpecialiteRepo crée le SpecialiteRepository GORM
func NewSpecialiteRepo(db *gorm.DB) SpecialiteRepository {
	return &specialiteRepo{db: db}
}

func (r *specialiteRepo) Create(ctx context.Context, specialite *model.Specialite) error {
	return r.db.WithContext(ctx).Create(specialite).Error
}

func (r *specialiteRepo) GetByID(ctx context.Context, id string) (*model.Specialite, error) {
	var specialite model.Specialite
	if err := r.db.WithContext(ctx).Preload("Branche").Where("id = ?", id).First(&specialite).Error; err != nil {
		return nil, err
	}
	return &specialite, nil
}

func (r *specialiteRepo) GetByCode(ctx context.Context, code string) (*model.Specialite, error) {
	var specialite model.Specialite
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&specialite).Error; err != nil {
		return nil, err
	}
	return &specialite, nil
}

func (r *specialiteRepo) Update(ctx context.Context, specialite *model.Specialite) error {
	return r.db.WithContext(ctx).Save(specialite).Error
}

func (r *specialiteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Specialite{}, "id = ?", id).Error
}

func (r *specialiteRepo) ListByBranche(ctx context.Context, idBranche string) ([]model.Specialite, error) {
	var specialites []model.Specialite
	if err := r.db.WithContext(ctx).
		Where("id_branche = ?", idBranche).
		Order("code").
		Find(&specialites).Error; err != nil {
		return nil, err
	}
	return specialites, nil
}

// CountDependents dénombre modules, offres et liens spécialité-établissement
// qui seraient supprimés en cascade avec la spécialité.
func (r *specialiteRepo) CountDependents(ctx context.Context, id string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM modules m WHERE m.id_specialite = @id)
			+ (SELECT COUNT(*) FROM offres o WHERE o.id_specialite = @id)
			+ (SELECT COUNT(*) FROM specialite_etabs se WHERE se.id_specialite = @id)`,
		map[string]interface{}{"id": id}).
		Scan(&total).Error
	return total, err
}

// ── Module ──

// ModuleRepository accès aux modules d'enseignement
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	GetByID(ctx context.Context, id string) (*model.Module, error)
	GetByCode(ctx context.Context, code string) (*model.Module, error)
	Update(ctx context.Context, module *model.Module) error
	Delete(ctx context.Context, id string) error
	ListBySpecialite(ctx context.Context, idSpecialite string) ([]model.Module, error)
	CountDependents(ctx context.Context, id string) (int64, error)
}

type moduleRepo struct {
	db *gorm.DB
}

// NewModuleRepo crée le ModuleRepository GORM
func NewModuleRepo(db *gorm.DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) Create(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepo) GetByID(ctx context.Context, id string) (*model.Module, error) {
	var module model.Module
	if err := r.db.WithContext(ctx).Preload("Specialite").Where("id = ?", id).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) GetByCode(ctx context.Context, code string) (*model.Module, error) {
	var module model.Module
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) Update(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Save(module).Error
}

func (r *moduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Module{}, "id = ?", id).Error
}

func (r *moduleRepo) ListBySpecialite(ctx context.Context, idSpecialite string) ([]model.Module, error) {
	var modules []model.Module
	if err := r.db.WithContext(ctx).
		Where("id_specialite = ?", idSpecialite).
		Order("code").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// CountDependents dénombre cours, programmes et affectations qui seraient
// supprimés en cascade avec le module.
func (r *moduleRepo) CountDependents(ctx context.Context, id string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM cours c WHERE c.id_module = @id)
			+ (SELECT COUNT(*) FROM programmes p WHERE p.id_module = @id)
			+ (SELECT COUNT(*) FROM ens_modules em WHERE em.id_module = @id)`,
		map[string]interface{}{"id": id}).
		Scan(&total).Error
	return total, err
}
