package model

// Référentiels plats : référencés par enseignants et offres, jamais possédés.

// Grade grade d'un enseignant — table grades
type Grade struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr string `gorm:"column:designation_ar;type:varchar(255)"          json:"designation_ar,omitempty"`
	BaseModel
}

// TableName nom de la table
func (Grade) TableName() string { return "grades" }

// Diplome diplôme délivré — table diplomes
type Diplome struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr string `gorm:"column:designation_ar;type:varchar(255)"          json:"designation_ar,omitempty"`
	BaseModel
}

// TableName nom de la table
func (Diplome) TableName() string { return "diplomes" }

// ModeFormation mode de formation (présentiel, apprentissage…) — table mode_formations
type ModeFormation struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	DesignationFr string `gorm:"column:designation_fr;type:varchar(255);not null" json:"designation_fr"`
	DesignationAr string `gorm:"column:designation_ar;type:varchar(255)"          json:"designation_ar,omitempty"`
	BaseModel
}

// TableName nom de la table
func (ModeFormation) TableName() string { return "mode_formations" }
