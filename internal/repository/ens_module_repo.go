package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// EnsModuleRepository accès aux affectations d'enseignement
type EnsModuleRepository interface {
	Create(ctx context.Context, affectation *model.EnsModule) error
	GetByKey(ctx context.Context, idModule, idEnseignant, anneeScolaire string) (*model.EnsModule, error)
	Update(ctx context.Context, affectation *model.EnsModule) error
	Delete(ctx context.Context, idModule, idEnseignant, anneeScolaire string) error
	ListByEnseignant(ctx context.Context, idEnseignant string) ([]model.EnsModule, error)
	ListByModule(ctx context.Context, idModule string) ([]model.EnsModule, error)
	ListByAnnee(ctx context.Context, anneeScolaire string) ([]model.EnsModule, error)
}

type ensModuleRepo struct {
	db *gorm.DB
}

// NewEnsModuleRepo crée le EnsModuleRepository GORM
func NewEnsModuleRepo(db *gorm.DB) EnsModuleRepository {
	return &ensModuleRepo{db: db}
}

func (r *ensModuleRepo) Create(ctx context.Context, affectation *model.EnsModule) error {
	return r.db.WithContext(ctx).Create(affectation).Error
}

func (r *ensModuleRepo) GetByKey(ctx context.Context, idModule, idEnseignant, anneeScolaire string) (*model.EnsModule, error) {
	var affectation model.EnsModule
	err := r.db.WithContext(ctx).
		Where("id_module = ? AND id_enseignant = ? AND annee_scolaire = ?", idModule, idEnseignant, anneeScolaire).
		First(&affectation).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

func (r *ensModuleRepo) Update(ctx context.Context, affectation *model.EnsModule) error {
	return r.db.WithContext(ctx).Save(affectation).Error
}

func (r *ensModuleRepo) Delete(ctx context.Context, idModule, idEnseignant, anneeScolaire string) error {
	return r.db.WithContext(ctx).
		Where("id_module = ? AND id_enseignant = ? AND annee_scolaire = ?", idModule, idEnseignant, anneeScolaire).
		Delete(&model.EnsModule{}).Error
}

func (r *ensModuleRepo) ListByEnseignant(ctx context.Context, idEnseignant string) ([]model.EnsModule, error) {
	var affectations []model.EnsModule
	if err := r.db.WithContext(ctx).
		Preload("Module").
		Where("id_enseignant = ?", idEnseignant).
		Order("annee_scolaire DESC").
		Find(&affectations).Error; err != nil {
		return nil, err
	}
	return affectations, nil
}

func (r *ensModuleRepo) ListByModule(ctx context.Context, idModule string) ([]model.EnsModule, error) {
	var affectations []model.EnsModule
	if err := r.db.WithContext(ctx).
		Preload("Enseignant").
		Where("id_module = ?", idModule).
		Order("annee_scolaire DESC").
		Find(&affectations).Error; err != nil {
		return nil, err
	}
	return affectations, nil
}

func (r *ensModuleRepo) ListByAnnee(ctx context.Context, anneeScolaire string) ([]model.EnsModule, error) {
	var affectations []model.EnsModule
	if err := r.db.WithContext(ctx).
		Preload("Module").
		Preload("Enseignant").
		Where("annee_scolaire = ?", anneeScolaire).
		Find(&affectations).Error; err != nil {
		return nil, err
	}
	return affectations, nil
}
