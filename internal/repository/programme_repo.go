package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// ProgrammeRepository accès aux programmes soumis
type ProgrammeRepository interface {
	Create(ctx context.Context, programme *model.Programme) error
	GetByID(ctx context.Context, id string) (*model.Programme, error)
	GetByCode(ctx context.Context, code string) (*model.Programme, error)
	Update(ctx context.Context, programme *model.Programme) error
	Delete(ctx context.Context, id string) error
	ListByEtabRegionale(ctx context.Context, idEtab string) ([]model.Programme, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Programme, int64, error)
}

type programmeRepo struct {
	db *gorm.DB
}

// NewProgrammeRepo crée le ProgrammeRepository GORM
func NewProgrammeRepo(db *gorm.DB) ProgrammeRepository {
	return &programmeRepo{db: db}
}

func (r *programmeRepo) Create(ctx context.Context, programme *model.Programme) error {
	return r.db.WithContext(ctx).Create(programme).Error
}

func (r *programmeRepo) GetByID(ctx context.Context, id string) (*model.Programme, error) {
	var programme model.Programme
	err := r.db.WithContext(ctx).
		Preload("Module").
		Preload("EtabRegionale").
		Where("id = ?", id).
		First(&programme).Error
	if err != nil {
		return nil, err
	}
	return &programme, nil
}

func (r *programmeRepo) GetByCode(ctx context.Context, code string) (*model.Programme, error) {
	var programme model.Programme
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&programme).Error; err != nil {
		return nil, err
	}
	return &programme, nil
}

func (r *programmeRepo) Update(ctx context.Context, programme *model.Programme) error {
	return r.db.WithContext(ctx).Save(programme).Error
}

func (r *programmeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Programme{}, "id = ?", id).Error
}

func (r *programmeRepo) ListByEtabRegionale(ctx context.Context, idEtab string) ([]model.Programme, error) {
	var programmes []model.Programme
	if err := r.db.WithContext(ctx).
		Where("id_etab_regionale = ?", idEtab).
		Order("created_at DESC").
		Find(&programmes).Error; err != nil {
		return nil, err
	}
	return programmes, nil
}

func (r *programmeRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]model.Programme, int64, error) {
	var programmes []model.Programme
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Programme{}).Where("status = ?", status)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Module").Preload("EtabRegionale").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&programmes).Error; err != nil {
		return nil, 0, err
	}

	return programmes, total, nil
}
