package model

import "time"

// EnsModule affectation d'enseignement — table ens_modules.
// Fait ternaire : le même couple enseignant-module peut se répéter
// d'une année scolaire à l'autre ; la clé composite porte l'année.
type EnsModule struct {
	IDModule      string `gorm:"column:id_module;type:uuid;primaryKey;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"     json:"id_module"`
	IDEnseignant  string `gorm:"column:id_enseignant;type:uuid;primaryKey;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_enseignant"`
	AnneeScolaire string `gorm:"column:annee_scolaire;type:varchar(20);primaryKey"                                      json:"annee_scolaire"`
	Semestre      string `gorm:"type:varchar(10);not null;default:''" json:"semestre"` // S1..S4 | Premier | Deuxième | '' (non précisé)
	BaseModel

	Module     *Module     `gorm:"foreignKey:IDModule;references:ID"     json:"module,omitempty"`
	Enseignant *Enseignant `gorm:"foreignKey:IDEnseignant;references:ID" json:"enseignant,omitempty"`
}

// TableName nom de la table
func (EnsModule) TableName() string { return "ens_modules" }

// Inscription inscription d'un stagiaire à une offre — table inscriptions.
// Un stagiaire ne peut s'inscrire qu'une fois à la même offre.
type Inscription struct {
	ID              string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDStagiaire     string    `gorm:"column:id_stagiaire;type:uuid;not null;uniqueIndex:inscriptions_stagiaire_offre_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_stagiaire"`
	IDOffre         string    `gorm:"column:id_offre;type:uuid;not null;uniqueIndex:inscriptions_stagiaire_offre_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"     json:"id_offre"`
	DateInscription time.Time `gorm:"column:date_inscription;type:date;not null;default:CURRENT_DATE" json:"date_inscription"`
	Statut          string    `gorm:"type:varchar(20);not null;default:'en_attente'"                  json:"statut"` // en_attente | acceptee | refusee | annulee
	BaseModel

	Stagiaire *Stagiaire `gorm:"foreignKey:IDStagiaire;references:ID" json:"stagiaire,omitempty"`
	Offre     *Offre     `gorm:"foreignKey:IDOffre;references:ID"     json:"offre,omitempty"`
}

// TableName nom de la table
func (Inscription) TableName() string { return "inscriptions" }

// SpecialiteEtab spécialités actuellement ouvertes dans un établissement
// de formation — table specialite_etabs
type SpecialiteEtab struct {
	ID              string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDSpecialite    string     `gorm:"column:id_specialite;type:uuid;not null;uniqueIndex:specialite_etabs_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"     json:"id_specialite"`
	IDEtabFormation string     `gorm:"column:id_etab_formation;type:uuid;not null;uniqueIndex:specialite_etabs_uniq;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_formation"`
	DateOuverture   *time.Time `gorm:"column:date_ouverture;type:date" json:"date_ouverture,omitempty"`
	Actif           bool       `gorm:"not null;default:true"           json:"actif"`
	BaseModel

	Specialite    *Specialite             `gorm:"foreignKey:IDSpecialite;references:ID"    json:"specialite,omitempty"`
	EtabFormation *EtablissementFormation `gorm:"foreignKey:IDEtabFormation;references:ID" json:"etab_formation,omitempty"`
}

// TableName nom de la table
func (SpecialiteEtab) TableName() string { return "specialite_etabs" }
