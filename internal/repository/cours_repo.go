package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// CoursRepository accès aux cours soumis
type CoursRepository interface {
	Create(ctx context.Context, cours *model.Cours) error
	GetByID(ctx context.Context, id string) (*model.Cours, error)
	GetByCode(ctx context.Context, code string) (*model.Cours, error)
	Update(ctx context.Context, cours *model.Cours) error
	Delete(ctx context.Context, id string) error
	ListByModule(ctx context.Context, idModule string) ([]model.Cours, error)
	ListByEnseignant(ctx context.Context, idEnseignant string) ([]model.Cours, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Cours, int64, error)
}

type coursRepo struct {
	db *gorm.DB
}

// NewCoursRepo crée le CoursRepository GORM
func NewCoursRepo(db *gorm.DB) CoursRepository {
	return &coursRepo{db: db}
}

func (r *coursRepo) Create(ctx context.Context, cours *model.Cours) error {
	return r.db.WithContext(ctx).Create(cours).Error
}

func (r *coursRepo) GetByID(ctx context.Context, id string) (*model.Cours, error) {
	var cours model.Cours
	err := r.db.WithContext(ctx).
		Preload("Module").
		Preload("Enseignant").
		Where("id = ?", id).
		First(&cours).Error
	if err != nil {
		return nil, err
	}
	return &cours, nil
}

func (r *coursRepo) GetByCode(ctx context.Context, code string) (*model.Cours, error) {
	var cours model.Cours
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&cours).Error; err != nil {
		return nil, err
	}
	return &cours, nil
}

func (r *coursRepo) Update(ctx context.Context, cours *model.Cours) error {
	return r.db.WithContext(ctx).Save(cours).Error
}

func (r *coursRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Cours{}, "id = ?", id).Error
}

func (r *coursRepo) ListByModule(ctx context.Context, idModule string) ([]model.Cours, error) {
	var cours []model.Cours
	if err := r.db.WithContext(ctx).
		Where("id_module = ?", idModule).
		Order("created_at DESC").
		Find(&cours).Error; err != nil {
		return nil, err
	}
	return cours, nil
}

func (r *coursRepo) ListByEnseignant(ctx context.Context, idEnseignant string) ([]model.Cours, error) {
	var cours []model.Cours
	if err := r.db.WithContext(ctx).
		Where("id_enseignant = ?", idEnseignant).
		Order("created_at DESC").
		Find(&cours).Error; err != nil {
		return nil, err
	}
	return cours, nil
}

func (r *coursRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Cours, int64, error) {
	var cours []model.Cours
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Cours{}).Where("status = ?", status)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Module").Preload("Enseignant").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&cours).Error; err != nil {
		return nil, 0, err
	}

	return cours, total, nil
}
