package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// Les trois référentiels (grades, diplômes, modes de formation) exposent
// le même contrat minimal : tables de consultation, jamais possédées.

// GradeRepository accès aux grades
type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	GetByID(ctx context.Context, id string) (*model.Grade, error)
	GetByCode(ctx context.Context, code string) (*model.Grade, error)
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Grade, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo crée le GradeRepository GORM
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepo) GetByID(ctx context.Context, id string) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&grade).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) GetByCode(ctx context.Context, code string) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&grade).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, "id = ?", id).Error
}

func (r *gradeRepo) List(ctx context.Context) ([]model.Grade, error) {
	var grades []model.Grade
	if err := r.db.WithContext(ctx).Order("code").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// DiplomeRepository accès aux diplômes
type DiplomeRepository interface {
	Create(ctx context.Context, diplome *model.Diplome) error
	GetByID(ctx context.Context, id string) (*model.Diplome, error)
	GetByCode(ctx context.Context, code string) (*model.Diplome, error)
	Update(ctx context.Context, diplome *model.Diplome) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Diplome, error)
}

type diplomeRepo struct {
	db *gorm.DB
}

// NewDiplomeRepo crée le DiplomeRepository GORM
func NewDiplomeRepo(db *gorm.DB) DiplomeRepository {
	return &diplomeRepo{db: db}
}

func (r *diplomeRepo) Create(ctx context.Context, diplome *model.Diplome) error {
	return r.db.WithContext(ctx).Create(diplome).Error
}

func (r *diplomeRepo) GetByID(ctx context.Context, id string) (*model.Diplome, error) {
	var diplome model.Diplome
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&diplome).Error; err != nil {
		return nil, err
	}
	return &diplome, nil
}

func (r *diplomeRepo) GetByCode(ctx context.Context, code string) (*model.Diplome, error) {
	var diplome model.Diplome
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&diplome).Error; err != nil {
		return nil, err
	}
	return &diplome, nil
}

func (r *diplomeRepo) Update(ctx context.Context, diplome *model.Diplome) error {
	return r.db.WithContext(ctx).Save(diplome).Error
}

func (r *diplomeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Diplome{}, "id = ?", id).Error
}

func (r *diplomeRepo) List(ctx context.Context) ([]model.Diplome, error) {
	var diplomes []model.Diplome
	if err := r.db.WithContext(ctx).Order("code").Find(&diplomes).Error; err != nil {
		return nil, err
	}
	return diplomes, nil
}

// ModeFormationRepository accès aux modes de formation
type ModeFormationRepository interface {
	Create(ctx context.Context, mode *model.ModeFormation) error
	GetByID(ctx context.Context, id string) (*model.ModeFormation, error)
	GetByCode(ctx context.Context, code string) (*model.ModeFormation, error)
	Update(ctx context.Context, mode *model.ModeFormation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.ModeFormation, error)
}

type modeFormationRepo struct {
	db *gorm.DB
}

// NewModeFormationRepo crée le ModeFormationRepository GORM
func NewModeFormationRepo(db *gorm.DB) ModeFormationRepository {
	return &modeFormationRepo{db: db}
}

func (r *modeFormationRepo) Create(ctx context.Context, mode *model.ModeFormation) error {
	return r.db.WithContext(ctx).Create(mode).Error
}

func (r *modeFormationRepo) GetByID(ctx context.Context, id string) (*model.ModeFormation, error) {
	var mode model.ModeFormation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mode).Error; err != nil {
		return nil, err
	}
	return &mode, nil
}

func (r *modeFormationRepo) GetByCode(ctx context.Context, code string) (*model.ModeFormation, error) {
	var mode model.ModeFormation
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&mode).Error; err != nil {
		return nil, err
	}
	return &mode, nil
}

func (r *modeFormationRepo) Update(ctx context.Context, mode *model.ModeFormation) error {
	return r.db.WithContext(ctx).Save(mode).Error
}

func (r *modeFormationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ModeFormation{}, "id = ?", id).Error
}

func (r *modeFormationRepo) List(ctx context.Context) ([]model.ModeFormation, error) {
	var modes []model.ModeFormation
	if err := r.db.WithContext(ctx).Order("code").Find(&modes).Error; err != nil {
		return nil, err
	}
	return modes, nil
}
