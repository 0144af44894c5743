package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// EnseignantRepository accès aux profils enseignants
type EnseignantRepository interface {
	Create(ctx context.Context, enseignant *model.Enseignant) error
	GetByID(ctx context.Context, id string) (*model.Enseignant, error)
	GetByEmail(ctx context.Context, email string) (*model.Enseignant, error)
	GetByCompteID(ctx context.Context, compteID string) (*model.Enseignant, error)
	Update(ctx context.Context, enseignant *model.Enseignant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]model.Enseignant, int64, error)
}

type enseignantRepo struct {
	db *gorm.DB
}

// NewEnseignantRepo crée le EnseignantRepository GORM
func NewEnseignantRepo(db *gorm.DB) EnseignantRepository {
	return &enseignantRepo{db: db}
}

func (r *enseignantRepo) Create(ctx context.Context, enseignant *model.Enseignant) error {
	return r.db.WithContext(ctx).Create(enseignant).Error
}

func (r *enseignantRepo) GetByID(ctx context.Context, id string) (*model.Enseignant, error) {
	var enseignant model.Enseignant
	err := r.db.WithContext(ctx).
		Preload("Grade").
		Preload("Compte").
		Where("id = ?", id).
		First(&enseignant).Error
	if err != nil {
		return nil, err
	}
	return &enseignant, nil
}

func (r *enseignantRepo) GetByEmail(ctx context.Context, email string) (*model.Enseignant, error) {
	var enseignant model.Enseignant
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&enseignant).Error
	if err != nil {
		return nil, err
	}
	return &enseignant, nil
}

func (r *enseignantRepo) GetByCompteID(ctx context.Context, compteID string) (*model.Enseignant, error) {
	var enseignant model.Enseignant
	err := r.db.WithContext(ctx).
		Where("id_compte = ?", compteID).
		First(&enseignant).Error
	if err != nil {
		return nil, err
	}
	return &enseignant, nil
}

func (r *enseignantRepo) Update(ctx context.Context, enseignant *model.Enseignant) error {
	return r.db.WithContext(ctx).Save(enseignant).Error
}

func (r *enseignantRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Enseignant{}, "id = ?", id).Error
}

func (r *enseignantRepo) List(ctx context.Context, offset, limit int) ([]model.Enseignant, int64, error) {
	var enseignants []model.Enseignant
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Enseignant{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Grade").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&enseignants).Error; err != nil {
		return nil, 0, err
	}

	return enseignants, total, nil
}
