package model

// Les trois niveaux d'établissement partagent la même forme (code, noms bilingues,
// lien compte en SET NULL) ; seul le parent hiérarchique change.

// EtablissementNationale racine de la hiérarchie — table etablissements_nationale
type EtablissementNationale struct {
	ID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code     string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	NomFr    string  `gorm:"column:nom_fr;type:varchar(255);not null"       json:"nom_fr"`
	NomAr    string  `gorm:"column:nom_ar;type:varchar(255)"                json:"nom_ar,omitempty"`
	IDCompte *string `gorm:"column:id_compte;type:uuid;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"id_compte,omitempty"`
	BaseModel

	Compte *Compte `gorm:"foreignKey:IDCompte;references:ID" json:"compte,omitempty"`
}

// TableName nom de la table
func (EtablissementNationale) TableName() string { return "etablissements_nationale" }

// ProfilID implémente Profil
func (e *EtablissementNationale) ProfilID() string { return e.ID }

// CompteRef implémente Profil
func (e *EtablissementNationale) CompteRef() *string { return e.IDCompte }

// SetCompteRef implémente Profil
func (e *EtablissementNationale) SetCompteRef(id *string) { e.IDCompte = id }

// DisplayName implémente Profil
func (e *EtablissementNationale) DisplayName() string { return e.NomFr }

// RoleAttendu implémente Profil
func (e *EtablissementNationale) RoleAttendu() string { return RoleEtabNationale }

// EtablissementRegionale niveau régional — table etablissements_regionale
type EtablissementRegionale struct {
	ID              string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	NomFr           string  `gorm:"column:nom_fr;type:varchar(255);not null"       json:"nom_fr"`
	NomAr           string  `gorm:"column:nom_ar;type:varchar(255)"                json:"nom_ar,omitempty"`
	IDEtabNationale string  `gorm:"column:id_etab_nationale;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_nationale"`
	IDCompte        *string `gorm:"column:id_compte;type:uuid;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"id_compte,omitempty"`
	BaseModel

	EtabNationale *EtablissementNationale `gorm:"foreignKey:IDEtabNationale;references:ID" json:"etab_nationale,omitempty"`
	Compte        *Compte                 `gorm:"foreignKey:IDCompte;references:ID"        json:"compte,omitempty"`
}

// TableName nom de la table
func (EtablissementRegionale) TableName() string { return "etablissements_regionale" }

// ProfilID implémente Profil
func (e *EtablissementRegionale) ProfilID() string { return e.ID }

// CompteRef implémente Profil
func (e *EtablissementRegionale) CompteRef() *string { return e.IDCompte }

// SetCompteRef implémente Profil
func (e *EtablissementRegionale) SetCompteRef(id *string) { e.IDCompte = id }

// DisplayName implémente Profil
func (e *EtablissementRegionale) DisplayName() string { return e.NomFr }

// RoleAttendu implémente Profil
func (e *EtablissementRegionale) RoleAttendu() string { return RoleEtabRegionale }

// EtablissementFormation établissement de formation — table etablissements_formation
type EtablissementFormation struct {
	ID              string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	NomFr           string  `gorm:"column:nom_fr;type:varchar(255);not null"       json:"nom_fr"`
	NomAr           string  `gorm:"column:nom_ar;type:varchar(255)"                json:"nom_ar,omitempty"`
	IDEtabRegionale string  `gorm:"column:id_etab_regionale;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_regionale"`
	IDCompte        *string `gorm:"column:id_compte;type:uuid;uniqueIndex;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"id_compte,omitempty"`
	BaseModel

	EtabRegionale *EtablissementRegionale `gorm:"foreignKey:IDEtabRegionale;references:ID" json:"etab_regionale,omitempty"`
	Compte        *Compte                 `gorm:"foreignKey:IDCompte;references:ID"        json:"compte,omitempty"`
}

// TableName nom de la table
func (EtablissementFormation) TableName() string { return "etablissements_formation" }

// ProfilID implémente Profil
func (e *EtablissementFormation) ProfilID() string { return e.ID }

// CompteRef implémente Profil
func (e *EtablissementFormation) CompteRef() *string { return e.IDCompte }

// SetCompteRef implémente Profil
func (e *EtablissementFormation) SetCompteRef(id *string) { e.IDCompte = id }

// DisplayName implémente Profil
func (e *EtablissementFormation) DisplayName() string { return e.NomFr }

// RoleAttendu implémente Profil
func (e *EtablissementFormation) RoleAttendu() string { return RoleEtabFormation }
