package model

import "time"

// BaseModel champs d'audit communs (embarqué par tous les modèles métier)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Profil capacité commune aux cinq profils liés à un compte.
// Évite de dupliquer la logique de liaison compte↔profil par type.
type Profil interface {
	ProfilID() string
	CompteRef() *string
	SetCompteRef(id *string)
	DisplayName() string
	RoleAttendu() string
}
