package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
)

// ── Établissement national ──

// EtabNationaleRepository accès aux établissements nationaux
type EtabNationaleRepository interface {
	Create(ctx context.Context, etab *model.EtablissementNationale) error
	GetByID(ctx context.Context, id string) (*model.EtablissementNationale, error)
	GetByCode(ctx context.Context, code string) (*model.EtablissementNationale, error)
	GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementNationale, error)
	Update(ctx context.Context, etab *model.EtablissementNationale) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.EtablissementNationale, error)
}

type etabNationaleRepo struct {
	db *gorm.DB
}

// NewEtabNationaleRepo crée le EtabNationaleRepository GORM
func NewEtabNationaleRepo(db *gorm.DB) EtabNationaleRepository {
	return &etabNationaleRepo{db: db}
}

func (r *etabNationaleRepo) Create(ctx context.Context, etab *model.EtablissementNationale) error {
	return r.db.WithContext(ctx).Create(etab).Error
}

func (r *etabNationaleRepo) GetByID(ctx context.Context, id string) (*model.EtablissementNationale, error) {
	var etab model.EtablissementNationale
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabNationaleRepo) GetByCode(ctx context.Context, code string) (*model.EtablissementNationale, error) {
	var etab model.EtablissementNationale
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabNationaleRepo) GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementNationale, error) {
	var etab model.EtablissementNationale
	if err := r.db.WithContext(ctx).Where("id_compte = ?", compteID).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabNationaleRepo) Update(ctx context.Context, etab *model.EtablissementNationale) error {
	return r.db.WithContext(ctx).Save(etab).Error
}

func (r *etabNationaleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.EtablissementNationale{}, "id = ?", id).Error
}

func (r *etabNationaleRepo) List(ctx context.Context) ([]model.EtablissementNationale, error) {
	var etabs []model.EtablissementNationale
	if err := r.db.WithContext(ctx).Order("code").Find(&etabs).Error; err != nil {
		return nil, err
	}
	return etabs, nil
}

// ── Établissement régional ──

// EtabRegionaleRepository accès aux établissements régionaux
type EtabRegionaleRepository interface {
	Create(ctx context.Context, etab *model.EtablissementRegionale) error
	GetByID(ctx context.Context, id string) (*model.EtablissementRegionale, error)
	GetByCode(ctx context.Context, code string) (*model.EtablissementRegionale, error)
	GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementRegionale, error)
	Update(ctx context.Context, etab *model.EtablissementRegionale) error
	Delete(ctx context.Context, id string) error
	ListByNationale(ctx context.Context, idNationale string) ([]model.EtablissementRegionale, error)
	CountDependents(ctx context.Context, id string) (int64, error)
}

type etabRegionaleRepo struct {
	db *gorm.DB
}

// NewEtabRegionaleRepo crée le EtabRegionaleRepository GORM
func NewEtabRegionaleRepo(db *gorm.DB) EtabRegionaleRepository {
	return &etabRegionaleRepo{db: db}
}

func (r *etabRegionaleRepo) Create(ctx context.Context, etab *model.EtablissementRegionale) error {
	return r.db.WithContext(ctx).Create(etab).Error
}

func (r *etabRegionaleRepo) GetByID(ctx context.Context, id string) (*model.EtablissementRegionale, error) {
	var etab model.EtablissementRegionale
	if err := r.db.WithContext(ctx).Preload("EtabNationale").Where("id = ?", id).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabRegionaleRepo) GetByCode(ctx context.Context, code string) (*model.EtablissementRegionale, error) {
	var etab model.EtablissementRegionale
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabRegionaleRepo) GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementRegionale, error) {
	var etab model.EtablissementRegionale
	if err := r.db.WithContext(ctx).Where("id_compte = ?", compteID).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabRegionaleRepo) Update(ctx context.Context, etab *model.EtablissementRegionale) error {
	return r.db.WithContext(ctx).Save(etab).Error
}

func (r *etabRegionaleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.EtablissementRegionale{}, "id = ?", id).Error
}

func (r *etabRegionaleRepo) ListByNationale(ctx context.Context, idNationale string) ([]model.EtablissementRegionale, error) {
	var etabs []model.EtablissementRegionale
	if err := r.db.WithContext(ctx).
		Where("id_etab_nationale = ?", idNationale).
		Order("code").
		Find(&etabs).Error; err != nil {
		return nil, err
	}
	return etabs, nil
}

// CountDependents dénombre les lignes qui disparaîtraient en cascade :
// branches du régional, spécialités et modules en dessous, établissements
// de formation rattachés.
func (r *etabRegionaleRepo) CountDependents(ctx context.Context, id string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM branches b WHERE b.id_etab_regionale = @id)
			+ (SELECT COUNT(*) FROM etablissements_formation f WHERE f.id_etab_regionale = @id)
			+ (SELECT COUNT(*) FROM specialites s
			     JOIN branches b ON s.id_branche = b.id
			    WHERE b.id_etab_regionale = @id)
			+ (SELECT COUNT(*) FROM modules m
			     JOIN specialites s ON m.id_specialite = s.id
			     JOIN branches b ON s.id_branche = b.id
			    WHERE b.id_etab_regionale = @id)
			+ (SELECT COUNT(*) FROM programmes p WHERE p.id_etab_regionale = @id)`,
		map[string]interface{}{"id": id}).
		Scan(&total).Error
	return total, err
}

// ── Établissement de formation ──

// EtabFormationRepository accès aux établissements de formation
type EtabFormationRepository interface {
	Create(ctx context.Context, etab *model.EtablissementFormation) error
	GetByID(ctx context.Context, id string) (*model.EtablissementFormation, error)
	GetByCode(ctx context.Context, code string) (*model.EtablissementFormation, error)
	GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementFormation, error)
	Update(ctx context.Context, etab *model.EtablissementFormation) error
	Delete(ctx context.Context, id string) error
	ListByRegionale(ctx context.Context, idRegionale string) ([]model.EtablissementFormation, error)
	List(ctx context.Context, offset, limit int) ([]model.EtablissementFormation, int64, error)
}

type etabFormationRepo struct {
	db *gorm.DB
}

// NewEtabFormationRepo crée le EtabFormationRepository GORM
func NewEtabFormationRepo(db *gorm.DB) EtabFormationRepository {
	return &etabFormationRepo{db: db}
}

func (r *etabFormationRepo) Create(ctx context.Context, etab *model.EtablissementFormation) error {
	return r.db.WithContext(ctx).Create(etab).Error
}

func (r *etabFormationRepo) GetByID(ctx context.Context, id string) (*model.EtablissementFormation, error) {
	var etab model.EtablissementFormation
	if err := r.db.WithContext(ctx).Preload("EtabRegionale").Where("id = ?", id).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabFormationRepo) GetByCode(ctx context.Context, code string) (*model.EtablissementFormation, error) {
	var etab model.EtablissementFormation
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabFormationRepo) GetByCompteID(ctx context.Context, compteID string) (*model.EtablissementFormation, error) {
	var etab model.EtablissementFormation
	if err := r.db.WithContext(ctx).Where("id_compte = ?", compteID).First(&etab).Error; err != nil {
		return nil, err
	}
	return &etab, nil
}

func (r *etabFormationRepo) Update(ctx context.Context, etab *model.EtablissementFormation) error {
	return r.db.WithContext(ctx).Save(etab).Error
}

func (r *etabFormationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.EtablissementFormation{}, "id = ?", id).Error
}

func (r *etabFormationRepo) ListByRegionale(ctx context.Context, idRegionale string) ([]model.EtablissementFormation, error) {
	var etabs []model.EtablissementFormation
	if err := r.db.WithContext(ctx).
		Where("id_etab_regionale = ?", idRegionale).
		Order("code").
		Find(&etabs).Error; err != nil {
		return nil, err
	}
	return etabs, nil
}

func (r *etabFormationRepo) List(ctx context.Context, offset, limit int) ([]model.EtablissementFormation, int64, error) {
	var etabs []model.EtablissementFormation
	var total int64

	db := r.db.WithContext(ctx).Model(&model.EtablissementFormation{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("code").
		Find(&etabs).Error; err != nil {
		return nil, 0, err
	}

	return etabs, total, nil
}
