package dto

// ── Profils personnes ──

// CreatePersonneRequest champs communs stagiaire/enseignant.
// Les noms sont normalisés à l'écriture (nom en majuscules, prénom en
// casse de titre) ; l'email est minusculisé avant le contrôle d'unicité.
type CreatePersonneRequest struct {
	NomFr         string  `json:"nom_fr"         binding:"required,min=2,max=100"`
	NomAr         string  `json:"nom_ar"         binding:"omitempty,max=100"`
	PrenomFr      string  `json:"prenom_fr"      binding:"required,min=2,max=100"`
	PrenomAr      string  `json:"prenom_ar"      binding:"omitempty,max=100"`
	DateNaissance string  `json:"date_naissance" binding:"omitempty"` // "1998-05-14"
	Email         *string `json:"email"          binding:"omitempty,email"`
	Telephone     string  `json:"telephone"      binding:"omitempty,max=30"`
}

// CreateStagiaireRequest création d'un profil stagiaire
type CreateStagiaireRequest struct {
	CreatePersonneRequest
}

// CreateEnseignantRequest création d'un profil enseignant
type CreateEnseignantRequest struct {
	CreatePersonneRequest
	IDGrade *string `json:"id_grade" binding:"omitempty,uuid"`
}

// UpdatePersonneRequest mise à jour partielle d'un profil personne
type UpdatePersonneRequest struct {
	NomFr         *string `json:"nom_fr"         binding:"omitempty,min=2,max=100"`
	NomAr         *string `json:"nom_ar"         binding:"omitempty,max=100"`
	PrenomFr      *string `json:"prenom_fr"      binding:"omitempty,min=2,max=100"`
	PrenomAr      *string `json:"prenom_ar"      binding:"omitempty,max=100"`
	DateNaissance *string `json:"date_naissance"`
	Email         *string `json:"email"          binding:"omitempty,email"`
	Telephone     *string `json:"telephone"      binding:"omitempty,max=30"`
}

// UpdateEnseignantRequest mise à jour partielle d'un enseignant
type UpdateEnseignantRequest struct {
	UpdatePersonneRequest
	IDGrade *string `json:"id_grade" binding:"omitempty,uuid"`
}

// PersonneResponse représentation d'un profil personne
type PersonneResponse struct {
	ID            string  `json:"id"`
	NomFr         string  `json:"nom_fr"`
	NomAr         string  `json:"nom_ar,omitempty"`
	PrenomFr      string  `json:"prenom_fr"`
	PrenomAr      string  `json:"prenom_ar,omitempty"`
	DateNaissance string  `json:"date_naissance,omitempty"`
	Email         *string `json:"email,omitempty"`
	Telephone     string  `json:"telephone,omitempty"`
	IDCompte      *string `json:"id_compte,omitempty"`
	Grade         *ReferentielResponse `json:"grade,omitempty"`
}

// LinkProfilRequest liaison d'un profil existant à un compte
type LinkProfilRequest struct {
	IDCompte string `json:"id_compte" binding:"required,uuid"`
}

// ── Établissements ──

// CreateEtablissementRequest création d'un établissement (tout niveau)
type CreateEtablissementRequest struct {
	Code     string  `json:"code"      binding:"required,min=2,max=50"`
	NomFr    string  `json:"nom_fr"    binding:"required,min=2,max=255"`
	NomAr    string  `json:"nom_ar"    binding:"omitempty,max=255"`
	IDParent *string `json:"id_parent" binding:"omitempty,uuid"` // exigé pour régional et formation
}

// EtablissementResponse représentation d'un établissement
type EtablissementResponse struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	NomFr    string  `json:"nom_fr"`
	NomAr    string  `json:"nom_ar,omitempty"`
	IDParent *string `json:"id_parent,omitempty"`
	IDCompte *string `json:"id_compte,omitempty"`
}
