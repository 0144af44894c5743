package model

import "time"

// Offre instance concrète de formation : spécialité × établissement × diplôme × mode.
// Au plus une offre par combinaison. La désignation et la durée sont dérivées
// à la lecture (voir service), jamais persistées.
type Offre struct {
	ID              string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDSpecialite    string     `gorm:"column:id_specialite;type:uuid;not null;uniqueIndex:offres_combinaison_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_specialite"`
	IDEtabFormation string     `gorm:"column:id_etab_formation;type:uuid;not null;uniqueIndex:offres_combinaison_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_formation"`
	IDDiplome       string     `gorm:"column:id_diplome;type:uuid;not null;uniqueIndex:offres_combinaison_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_diplome"`
	IDMode          string     `gorm:"column:id_mode;type:uuid;not null;uniqueIndex:offres_combinaison_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_mode"`
	DateDebut       *time.Time `gorm:"type:date" json:"date_debut,omitempty"`
	DateFin         *time.Time `gorm:"type:date" json:"date_fin,omitempty"`
	Statut          string     `gorm:"type:varchar(20);not null;default:'brouillon'" json:"statut"` // brouillon | active | archivee
	BaseModel

	// Associations
	Specialite     *Specialite             `gorm:"foreignKey:IDSpecialite;references:ID"    json:"specialite,omitempty"`
	EtabFormation  *EtablissementFormation `gorm:"foreignKey:IDEtabFormation;references:ID" json:"etab_formation,omitempty"`
	Diplome        *Diplome                `gorm:"foreignKey:IDDiplome;references:ID"       json:"diplome,omitempty"`
	Mode           *ModeFormation          `gorm:"foreignKey:IDMode;references:ID"          json:"mode,omitempty"`
}

// TableName nom de la table
func (Offre) TableName() string { return "offres" }
