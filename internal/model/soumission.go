package model

// Les trois soumissions (Cours, Mémoire, Programme) suivent le même workflow
// ternaire : état d'attente à la création, accepté ou refusé après revue,
// sans sortie d'un état terminal. L'observation du relecteur n'est posée
// qu'au moment de la revue.

// Cours support de cours soumis par un enseignant pour un module — table cours
type Cours struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code         string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	TitreFr      string `gorm:"column:titre_fr;type:varchar(255)"              json:"titre_fr,omitempty"`
	TitreAr      string `gorm:"column:titre_ar;type:varchar(255)"              json:"titre_ar,omitempty"`
	FichierPDF   string `gorm:"column:fichierpdf;type:varchar(255)"            json:"fichierpdf,omitempty"`
	Status       string `gorm:"type:varchar(20);not null;default:'en_attente'" json:"status"` // en_attente | valide | refuse
	Observation  string `gorm:"type:text"                                      json:"observation,omitempty"`
	IDModule     string `gorm:"column:id_module;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"     json:"id_module"`
	IDEnseignant string `gorm:"column:id_enseignant;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_enseignant"`
	BaseModel

	Module     *Module     `gorm:"foreignKey:IDModule;references:ID"     json:"module,omitempty"`
	Enseignant *Enseignant `gorm:"foreignKey:IDEnseignant;references:ID" json:"enseignant,omitempty"`
}

// TableName nom de la table
func (Cours) TableName() string { return "cours" }

// Memoire mémoire de fin de formation d'un stagiaire — table memoires
type Memoire struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TitreFr     string  `gorm:"column:titre_fr;type:varchar(255)"              json:"titre_fr,omitempty"`
	TitreAr     string  `gorm:"column:titre_ar;type:varchar(255)"              json:"titre_ar,omitempty"`
	FichierPDF  string  `gorm:"column:fichierpdf;type:varchar(255)"            json:"fichierpdf,omitempty"`
	Status      string  `gorm:"type:varchar(20);not null;default:'en_attente'" json:"status"` // en_attente | accepte | rejete
	Observation string  `gorm:"type:text"                                      json:"observation,omitempty"`
	IDStagiaire string  `gorm:"column:id_stagiaire;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_stagiaire"`
	IDEncadreur *string `gorm:"column:id_encadreur;type:uuid;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"          json:"id_encadreur,omitempty"`
	BaseModel

	Stagiaire *Stagiaire  `gorm:"foreignKey:IDStagiaire;references:ID" json:"stagiaire,omitempty"`
	Encadreur *Enseignant `gorm:"foreignKey:IDEncadreur;references:ID" json:"encadreur,omitempty"`
}

// TableName nom de la table
func (Memoire) TableName() string { return "memoires" }

// Programme programme pédagogique d'un module, porté par un établissement
// régional et revu au niveau national — table programmes
type Programme struct {
	ID              string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	TitreFr         string `gorm:"column:titre_fr;type:varchar(255)"              json:"titre_fr,omitempty"`
	TitreAr         string `gorm:"column:titre_ar;type:varchar(255)"              json:"titre_ar,omitempty"`
	FichierPDF      string `gorm:"column:fichierpdf;type:varchar(255)"            json:"fichierpdf,omitempty"`
	Status          string `gorm:"type:varchar(20);not null;default:'en_attente'" json:"status"` // en_attente | valide | refuse
	Observation     string `gorm:"type:text"                                      json:"observation,omitempty"`
	IDModule        string `gorm:"column:id_module;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"         json:"id_module"`
	IDEtabRegionale string `gorm:"column:id_etab_regionale;type:uuid;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"id_etab_regionale"`
	BaseModel

	Module        *Module                 `gorm:"foreignKey:IDModule;references:ID"        json:"module,omitempty"`
	EtabRegionale *EtablissementRegionale `gorm:"foreignKey:IDEtabRegionale;references:ID" json:"etab_regionale,omitempty"`
}

// TableName nom de la table
func (Programme) TableName() string { return "programmes" }
