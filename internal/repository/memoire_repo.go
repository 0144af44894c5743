package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// MemoireRepository accès aux mémoires soumis
type MemoireRepository interface {
	Create(ctx context.Context, memoire *model.Memoire) error
	GetByID(ctx context.Context, id string) (*model.Memoire, error)
	Update(ctx context.Context, memoire *model.Memoire) error
	Delete(ctx context.Context, id string) error
	ListByStagiaire(ctx context.Context, idStagiaire string) ([]model.Memoire, error)
	ListByEncadreur(ctx context.Context, idEncadreur string) ([]model.Memoire, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Memoire, int64, error)
}

type memoireRepo struct {
	db *gorm.DB
}

// NewMemoireRepo crée le MemoireRepository GORM
func NewMemoireRepo(db *gorm.DB) MemoireRepository {
	return &memoireRepo{db: db}
}

func (r *memoireRepo) Create(ctx context.Context, memoire *model.Memoire) error {
	return r.db.WithContext(ctx).Create(memoire).Error
}

func (r *memoireRepo) GetByID(ctx context.Context, id string) (*model.Memoire, error) {
	var memoire model.Memoire
	err := r.db.WithContext(ctx).
		Preload("Stagiaire").
		Preload("Encadreur").
		Where("id = ?", id).
		First(&memoire).Error
	if err != nil {
		return nil, err
	}
	return &memoire, nil
}

func (r *memoireRepo) Update(ctx context.Context, memoire *model.Memoire) error {
	return r.db.WithContext(ctx).Save(memoire).Error
}

func (r *memoireRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Memoire{}, "id = ?", id).Error
}

func (r *memoireRepo) ListByStagiaire(ctx context.Context, idStagiaire string) ([]model.Memoire, error) {
	var memoires []model.Memoire
	if err := r.db.WithContext(ctx).
		Where("id_stagiaire = ?", idStagiaire).
		Order("created_at DESC").
		Find(&memoires).Error; err != nil {
		return nil, err
	}
	return memoires, nil
}

func (r *memoireRepo) ListByEncadreur(ctx context.Context, idEncadreur string) ([]model.Memoire, error) {
	var memoires []model.Memoire
	if err := r.db.WithContext(ctx).
		Where("id_encadreur = ?", idEncadreur).
		Order("created_at DESC").
		Find(&memoires).Error; err != nil {
		return nil, err
	}
	return memoires, nil
}

func (r *memoireRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Memoire, int64, error) {
	var memoires []model.Memoire
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Memoire{}).Where("status = ?", status)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Stagiaire").Preload("Encadreur").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&memoires).Error; err != nil {
		return nil, 0, err
	}

	return memoires, total, nil
}
