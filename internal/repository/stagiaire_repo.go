package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// StagiaireRepository accès aux profils stagiaires
type StagiaireRepository interface {
	Create(ctx context.Context, stagiaire *model.Stagiaire) error
	GetByID(ctx context.Context, id string) (*model.Stagiaire, error)
	GetByEmail(ctx context.Context, email string) (*model.Stagiaire, error)
	GetByCompteID(ctx context.Context, compteID string) (*model.Stagiaire, error)
	Update(ctx context.Context, stagiaire *model.Stagiaire) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]model.Stagiaire, int64, error)
}

type stagiaireRepo struct {
	db *gorm.DB
}

// NewStagiaireRepo crée le StagiaireRepository GORM
func NewStagiaireRepo(db *gorm.DB) StagiaireRepository {
	return &stagiaireRepo{db: db}
}

func (r *stagiaireRepo) Create(ctx context.Context, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Create(stagiaire).Error
}

func (r *stagiaireRepo) GetByID(ctx context.Context, id string) (*model.Stagiaire, error) {
	var stagiaire model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Compte").
		Where("id = ?", id).
		First(&stagiaire).Error
	if err != nil {
		return nil, err
	}
	return &stagiaire, nil
}

func (r *stagiaireRepo) GetByEmail(ctx context.Context, email string) (*model.Stagiaire, error) {
	var stagiaire model.Stagiaire
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&stagiaire).Error
	if err != nil {
		return nil, err
	}
	return &stagiaire, nil
}

func (r *stagiaireRepo) GetByCompteID(ctx context.Context, compteID string) (*model.Stagiaire, error) {
	var stagiaire model.Stagiaire
	err := r.db.WithContext(ctx).
		Where("id_compte = ?", compteID).
		First(&stagiaire).Error
	if err != nil {
		return nil, err
	}
	return &stagiaire, nil
}

func (r *stagiaireRepo) Update(ctx context.Context, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Save(stagiaire).Error
}

func (r *stagiaireRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Stagiaire{}, "id = ?", id).Error
}

func (r *stagiaireRepo) List(ctx context.Context, offset, limit int) ([]model.Stagiaire, int64, error) {
	var stagiaires []model.Stagiaire
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Stagiaire{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&stagiaires).Error; err != nil {
		return nil, 0, err
	}

	return stagiaires, total, nil
}
