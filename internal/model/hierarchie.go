package model

// Hiérarchie académique sous l'établissement régional :
// Branche ⊃ Spécialité ⊃ Module. La suppression d'un parent
// cascade sur tous les descendants et les lignes qui les référencent.

// Branche branche académique — table branches
type Branche struct {
	ID              string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr   string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr   string `gorm:"column:designation_ar;type:varchar(255);not null" json:"designation_ar"`
	IDEtabRegionale string `gorm:"column:id_etab_regionale;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_regionale"`
	BaseModel

	EtabRegionale *EtablissementRegionale `gorm:"foreignKey:IDEtabRegionale;references:ID" json:"etab_regionale,omitempty"`
}

// TableName nom de la table
func (Branche) TableName() string { return "branches" }

// Specialite spécialité de formation — table specialites
type Specialite struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr string `gorm:"column:designation_ar;type:varchar(255);not null" json:"designation_ar"`
	IDBranche     string `gorm:"column:id_branche;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_branche"`
	BaseModel

	Branche *Branche `gorm:"foreignKey:IDBranche;references:ID" json:"branche,omitempty"`
}

// TableName nom de la table
func (Specialite) TableName() string { return "specialites" }

// Module module d'enseignement — table modules
type Module struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr string `gorm:"column:designation_ar;type:varchar(255);not null" json:"designation_ar"`
	IDSpecialite  string `gorm:"column:id_specialite;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_specialite"`
	BaseModel

	Specialite *Specialite `gorm:"foreignKey:IDSpecialite;references:ID" json:"specialite,omitempty"`
}

// TableName nom de la table
func (Module) TableName() string { return "modules" }
