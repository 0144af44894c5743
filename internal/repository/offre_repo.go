package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// OffreRepository accès aux offres de formation
type OffreRepository interface {
	Create(ctx context.Context, offre *model.Offre) error
	GetByID(ctx context.Context, id string) (*model.Offre, error)
	GetByCombinaison(ctx context.Context, idSpecialite, idEtab, idDiplome, idMode string) (*model.Offre, error)
	Update(ctx context.Context, offre *model.Offre) error
	Delete(ctx context.Context, id string) error
	ListByEtab(ctx context.Context, idEtab string, offset, limit int) ([]model.Offre, int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Offre, int64, error)
}

type offreRepo struct {
	db *gorm.DB
}

// NewOffreRepo crée le OffreRepository GORM
func NewOffreRepo(db *gorm.DB) OffreRepository {
	return &offreRepo{db: db}
}

func (r *offreRepo) Create(ctx context.Context, offre *model.Offre) error {
	return r.db.WithContext(ctx).Create(offre).Error
}

// GetByID précharge les quatre associations ; la désignation dérivée
// se calcule à partir des enregistrements joints.
func (r *offreRepo) GetByID(ctx context.Context, id string) (*model.Offre, error) {
	var offre model.Offre
	err := r.db.WithContext(ctx).
		Preload("Specialite").
		Preload("EtabFormation").
		Preload("Diplome").
		Preload("Mode").
		Where("id = ?", id).
		First(&offre).Error
	if err != nil {
		return nil, err
	}
	return &offre, nil
}

func (r *offreRepo) GetByCombinaison(ctx context.Context, idSpecialite, idEtab, idDiplome, idMode string) (*model.Offre, error) {
	var offre model.Offre
	err := r.db.WithContext(ctx).
		Where("id_specialite = ? AND id_etab_formation = ? AND id_diplome = ? AND id_mode = ?",
			idSpecialite, idEtab, idDiplome, idMode).
		First(&offre).Error
	if err != nil {
		return nil, err
	}
	return &offre, nil
}

func (r *offreRepo) Update(ctx context.Context, offre *model.Offre) error {
	return r.db.WithContext(ctx).Save(offre).Error
}

func (r *offreRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Offre{}, "id = ?", id).Error
}

func (r *offreRepo) ListByEtab(ctx context.Context, idEtab string, offset, limit int) ([]model.Offre, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.Offre{}).Where("id_etab_formation = ?", idEtab), offset, limit)
}

func (r *offreRepo) List(ctx context.Context, offset, limit int) ([]model.Offre, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.Offre{}), offset, limit)
}

func (r *offreRepo) list(_ context.Context, db *gorm.DB, offset, limit int) ([]model.Offre, int64, error) {
	var offres []model.Offre
	var total int64

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.
		Preload("Specialite").
		Preload("EtabFormation").
		Preload("Diplome").
		Preload("Mode").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&offres).Error; err != nil {
		return nil, 0, err
	}

	return offres, total, nil
}
