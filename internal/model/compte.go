package model

// Compte enregistrement d'identité — table comptes.
// Le rôle est immuable après création ; au plus un profil référence le compte.
type Compte struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(30);not null"                      json:"role"`
	BaseModel
}

// TableName nom de la table
func (Compte) TableName() string { return "comptes" }
