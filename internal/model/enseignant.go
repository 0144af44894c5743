package model

import "time"

// Enseignant profil enseignant — table enseignants
type Enseignant struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NomFr         string     `gorm:"column:nom_fr;type:varchar(100);not null"       json:"nom_fr"`
	NomAr         string     `gorm:"column:nom_ar;type:varchar(100)"                json:"nom_ar,omitempty"`
	PrenomFr      string     `gorm:"column:prenom_fr;type:varchar(100);not null"    json:"prenom_fr"`
	PrenomAr      string     `gorm:"column:prenom_ar;type:varchar(100)"             json:"prenom_ar,omitempty"`
	DateNaissance *time.Time `gorm:"type:date"                                      json:"date_naissance,omitempty"`
	Email         *string    `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Telephone     string     `gorm:"type:varchar(30)"                               json:"telephone,omitempty"`
	IDGrade       *string    `gorm:"column:id_grade;type:uuid;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_grade,omitempty"`
	IDCompte      *string    `gorm:"column:id_compte;type:uuid;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"id_compte,omitempty"`
	BaseModel

	// Associations
	Grade  *Grade  `gorm:"foreignKey:IDGrade;references:ID"  json:"grade,omitempty"`
	Compte *Compte `gorm:"foreignKey:IDCompte;references:ID" json:"compte,omitempty"`
}

// TableName nom de la table
func (Enseignant) TableName() string { return "enseignants" }

// ProfilID implémente Profil
func (e *Enseignant) ProfilID() string { return e.ID }

// CompteRef implémente Profil
func (e *Enseignant) CompteRef() *string { return e.IDCompte }

// SetCompteRef implémente Profil
func (e *Enseignant) SetCompteRef(id *string) { e.IDCompte = id }

// DisplayName implémente Profil
func (e *Enseignant) DisplayName() string { return e.PrenomFr + " " + e.NomFr }

// RoleAttendu implémente Profil
func (e *Enseignant) RoleAttendu() string { return RoleEnseignant }
