package dto

// ── Inscriptions ──

// CreateInscriptionRequest inscription d'un stagiaire à une offre
type CreateInscriptionRequest struct {
	IDOffre         string  `json:"id_offre"         binding:"required,uuid"`
	DateInscription *string `json:"date_inscription"` // défaut : date du jour
}

// UpdateInscriptionStatutRequest changement de statut d'une inscription
type UpdateInscriptionStatutRequest struct {
	Statut string `json:"statut" binding:"required,oneof=en_attente acceptee refusee annulee"`
}

// BulkInscriptionStatutRequest changement de statut en masse.
// Tout ou rien : soit toutes les lignes passent, soit aucune.
type BulkInscriptionStatutRequest struct {
	IDs    []string `json:"ids"    binding:"required,min=1,dive,uuid"`
	Statut string   `json:"statut" binding:"required,oneof=acceptee refusee annulee"`
}

// InscriptionResponse représentation d'une inscription
type InscriptionResponse struct {
	ID              string            `json:"id"`
	IDStagiaire     string            `json:"id_stagiaire"`
	IDOffre         string            `json:"id_offre"`
	DateInscription string            `json:"date_inscription"`
	Statut          string            `json:"statut"`
	Stagiaire       *PersonneResponse `json:"stagiaire,omitempty"`
	Offre           *OffreResponse    `json:"offre,omitempty"`
}

// ── Affectations d'enseignement ──

// AssignRequest affectation d'un enseignant à un module pour une année scolaire
type AssignRequest struct {
	IDModule      string `json:"id_module"      binding:"required,uuid"`
	IDEnseignant  string `json:"id_enseignant"  binding:"required,uuid"`
	AnneeScolaire string `json:"annee_scolaire" binding:"required,min=4,max=20"` // "2026-2027"
	Semestre      string `json:"semestre"       binding:"omitempty"`
}

// EnsModuleResponse représentation d'une affectation
type EnsModuleResponse struct {
	IDModule      string `json:"id_module"`
	IDEnseignant  string `json:"id_enseignant"`
	AnneeScolaire string `json:"annee_scolaire"`
	Semestre      string `json:"semestre"`
}
