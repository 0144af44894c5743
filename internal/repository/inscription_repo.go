package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// InscriptionRepository accès aux inscriptions
type InscriptionRepository interface {
	Create(ctx context.Context, inscription *model.Inscription) error
	GetByID(ctx context.Context, id string) (*model.Inscription, error)
	GetByStagiaireEtOffre(ctx context.Context, idStagiaire, idOffre string) (*model.Inscription, error)
	Update(ctx context.Context, inscription *model.Inscription) error
	Delete(ctx context.Context, id string) error
	ListByOffre(ctx context.Context, idOffre string) ([]model.Inscription, error)
	ListByStagiaire(ctx context.Context, idStagiaire string) ([]model.Inscription, error)
}

type inscriptionRepo struct {
	db *gorm.DB
}

// NewInscriptionRepo crée le InscriptionRepository GORM
func NewInscriptionRepo(db *gorm.DB) InscriptionRepository {
	return &inscriptionRepo{db: db}
}

func (r *inscriptionRepo) Create(ctx context.Context, inscription *model.Inscription) error {
	return r.db.WithContext(ctx).Create(inscription).Error
}

func (r *inscriptionRepo) GetByID(ctx context.Context, id string) (*model.Inscription, error) {
	var inscription model.Inscription
	err := r.db.WithContext(ctx).
		Preload("Stagiaire").
		Preload("Offre").
		Where("id = ?", id).
		First(&inscription).Error
	if err != nil {
		return nil, err
	}
	return &inscription, nil
}

func (r *inscriptionRepo) GetByStagiaireEtOffre(ctx context.Context, idStagiaire, idOffre string) (*model.Inscription, error) {
	var inscription model.Inscription
	err := r.db.WithContext(ctx).
		Where("id_stagiaire = ? AND id_offre = ?", idStagiaire, idOffre).
		First(&inscription).Error
	if err != nil {
		return nil, err
	}
	return &inscription, nil
}

func (r *inscriptionRepo) Update(ctx context.Context, inscription *model.Inscription) error {
	return r.db.WithContext(ctx).Save(inscription).Error
}

func (r *inscriptionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Inscription{}, "id = ?", id).Error
}

func (r *inscriptionRepo) ListByOffre(ctx context.Context, idOffre string) ([]model.Inscription, error) {
	var inscriptions []model.Inscription
	if err := r.db.WithContext(ctx).
		Preload("Stagiaire").
		Where("id_offre = ?", idOffre).
		Order("date_inscription").
		Find(&inscriptions).Error; err != nil {
		return nil, err
	}
	return inscriptions, nil
}

func (r *inscriptionRepo) ListByStagiaire(ctx context.Context, idStagiaire string) ([]model.Inscription, error) {
	var inscriptions []model.Inscription
	if err := r.db.WithContext(ctx).
		Preload("Offre").
		Where("id_stagiaire = ?", idStagiaire).
		Order("date_inscription DESC").
		Find(&inscriptions).Error; err != nil {
		return nil, err
	}
	return inscriptions, nil
}
