package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// CompteRepository accès aux comptes
type CompteRepository interface {
	Create(ctx context.Context, compte *model.Compte) error
	GetByID(ctx context.Context, id string) (*model.Compte, error)
	GetByUsername(ctx context.Context, username string) (*model.Compte, error)
	Update(ctx context.Context, compte *model.Compte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]model.Compte, int64, error)
}

type compteRepo struct {
	db *gorm.DB
}

// NewCompteRepo crée le CompteRepository GORM
func NewCompteRepo(db *gorm.DB) CompteRepository {
	return &compteRepo{db: db}
}

func (r *compteRepo) Create(ctx context.Context, compte *model.Compte) error {
	return r.db.WithContext(ctx).Create(compte).Error
}

func (r *compteRepo) GetByID(ctx context.Context, id string) (*model.Compte, error) {
	var compte model.Compte
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&compte).Error
	if err != nil {
		return nil, err
	}
	return &compte, nil
}

func (r *compteRepo) GetByUsername(ctx context.Context, username string) (*model.Compte, error) {
	var compte model.Compte
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&compte).Error
	if err != nil {
		return nil, err
	}
	return &compte, nil
}

func (r *compteRepo) Update(ctx context.Context, compte *model.Compte) error {
	return r.db.WithContext(ctx).Save(compte).Error
}

func (r *compteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Compte{}, "id = ?", id).Error
}

func (r *compteRepo) List(ctx context.Context, offset, limit int) ([]model.Compte, int64, error) {
	var comptes []model.Compte
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Compte{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&comptes).Error; err != nil {
		return nil, 0, err
	}

	return comptes, total, nil
}
