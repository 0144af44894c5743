package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// SpecialiteEtabRepository accès aux liens spécialité-établissement
type SpecialiteEtabRepository interface {
	Create(ctx context.Context, lien *model.SpecialiteEtab) error
	GetByID(ctx context.Context, id string) (*model.SpecialiteEtab, error)
	GetByPaire(ctx context.Context, idSpecialite, idEtab string) (*model.SpecialiteEtab, error)
	Update(ctx context.Context, lien *model.SpecialiteEtab) error
	Delete(ctx context.Context, id string) error
	ListByEtab(ctx context.Context, idEtab string) ([]model.SpecialiteEtab, error)
}

type specialiteEtabRepo struct {
	db *gorm.DB
}

// NewSpecialiteEtabRepo crée le SpecialiteEtabRepository GORM
func NewSpecialiteEtabRepo(db *gorm.DB) SpecialiteEtabRepository {
	return &specialiteEtabRepo{db: db}
}

func (r *specialiteEtabRepo) Create(ctx context.Context, lien *model.SpecialiteEtab) error {
	return r.db.WithContext(ctx).Create(lien).Error
}

func (r *specialiteEtabRepo) GetByID(ctx context.Context, id string) (*model.SpecialiteEtab, error) {
	var lien model.SpecialiteEtab
	err := r.db.WithContext(ctx).
		Preload("Specialite").
		Preload("EtabFormation").
		Where("id = ?", id).
		First(&lien).Error
	if err != nil {
		return nil, err
	}
	return &lien, nil
}

func (r *specialiteEtabRepo) GetByPaire(ctx context.Context, idSpecialite, idEtab string) (*model.SpecialiteEtab, error) {
	var lien model.SpecialiteEtab
	err := r.db.WithContext(ctx).
		Where("id_specialite = ? AND id_etab_formation = ?", idSpecialite, idEtab).
		First(&lien).Error
	if err != nil {
		return nil, err
	}
	return &lien, nil
}

func (r *specialiteEtabRepo) Update(ctx context.Context, lien *model.SpecialiteEtab) error {
	return r.db.WithContext(ctx).Save(lien).Error
}

func (r *specialiteEtabRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.SpecialiteEtab{}, "id = ?", id).Error
}

func (r *specialiteEtabRepo) ListByEtab(ctx context.Context, idEtab string) ([]model.SpecialiteEtab, error) {
	var liens []model.SpecialiteEtab
	if err := r.db.WithContext(ctx).
		Preload("Specialite").
		Where("id_etab_formation = ?", idEtab).
		Find(&liens).Error; err != nil {
		return nil, err
	}
	return liens, nil
}
