package model

import "time"

// Stagiaire profil stagiaire — table stagiaires
type Stagiaire struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NomFr         string     `gorm:"column:nom_fr;type:varchar(100);not null"       json:"nom_fr"`
	NomAr         string     `gorm:"column:nom_ar;type:varchar(100)"                json:"nom_ar,omitempty"`
	PrenomFr      string     `gorm:"column:prenom_fr;type:varchar(100);not null"    json:"prenom_fr"`
	PrenomAr      string     `gorm:"column:prenom_ar;type:varchar(100)"             json:"prenom_ar,omitempty"`
	DateNaissance *time.Time `gorm:"type:date"                                      json:"date_naissance,omitempty"`
	Email         *string    `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Telephone     string     `gorm:"type:varchar(30)"                               json:"telephone,omitempty"`
	IDCompte      *string    `gorm:"column:id_compte;type:uuid;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"id_compte,omitempty"`
	BaseModel

	// Associations
	Compte *Compte `gorm:"foreignKey:IDCompte;references:ID" json:"compte,omitempty"`
}

// TableName nom de la table
func (Stagiaire) TableName() string { return "stagiaires" }

// ProfilID implémente Profil
func (s *Stagiaire) ProfilID() string { return s.ID }

// CompteRef implémente Profil
func (s *Stagiaire) CompteRef() *string { return s.IDCompte }

// SetCompteRef implémente Profil
func (s *Stagiaire) SetCompteRef(id *string) { s.IDCompte = id }

// DisplayName implémente Profil
func (s *Stagiaire) DisplayName() string { return s.PrenomFr + " " + s.NomFr }

// RoleAttendu implémente Profil
func (s *Stagiaire) RoleAttendu() string { return RoleStagiaire }
