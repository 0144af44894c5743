package dto

// ── Soumissions (cours, mémoires, programmes) ──
// Le statut initial est forcé à l'état d'attente quel que soit l'appelant ;
// l'observation n'est posée qu'à la revue.

// CreateCoursRequest dépôt d'un cours par un enseignant
type CreateCoursRequest struct {
	Code       string `json:"code"       binding:"required,min=2,max=50"`
	TitreFr    string `json:"titre_fr"   binding:"omitempty,max=255"`
	TitreAr    string `json:"titre_ar"   binding:"omitempty,max=255"`
	FichierPDF string `json:"fichierpdf" binding:"omitempty,max=255"`
	IDModule   string `json:"id_module"  binding:"required,uuid"`
}

// CreateMemoireRequest dépôt d'un mémoire par un stagiaire
type CreateMemoireRequest struct {
	TitreFr     string  `json:"titre_fr"     binding:"omitempty,max=255"`
	TitreAr     string  `json:"titre_ar"     binding:"omitempty,max=255"`
	FichierPDF  string  `json:"fichierpdf"   binding:"omitempty,max=255"`
	IDEncadreur *string `json:"id_encadreur" binding:"omitempty,uuid"`
}

// CreateProgrammeRequest dépôt d'un programme par un établissement régional
type CreateProgrammeRequest struct {
	Code       string `json:"code"       binding:"required,min=2,max=50"`
	TitreFr    string `json:"titre_fr"   binding:"omitempty,max=255"`
	TitreAr    string `json:"titre_ar"   binding:"omitempty,max=255"`
	FichierPDF string `json:"fichierpdf" binding:"omitempty,max=255"`
	IDModule   string `json:"id_module"  binding:"required,uuid"`
}

// ReviewRequest décision de revue d'une soumission.
// L'observation du relecteur est obligatoire pour les deux décisions.
type ReviewRequest struct {
	Decision    string `json:"decision"    binding:"required,oneof=accept reject"`
	Observation string `json:"observation" binding:"required,min=1"`
}

// SoumissionResponse représentation commune d'une soumission
type SoumissionResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	TitreFr     string `json:"titre_fr,omitempty"`
	TitreAr     string `json:"titre_ar,omitempty"`
	FichierPDF  string `json:"fichierpdf,omitempty"`
	Status      string `json:"status"`
	Observation string `json:"observation,omitempty"`
	IDAuteur    string `json:"id_auteur,omitempty"`
	IDCible     string `json:"id_cible,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// TransitionEvent événement de changement d'état exposé au distributeur
// de notifications ; la livraison est hors du cœur.
type TransitionEvent struct {
	Entite        string `json:"entite"`
	ID            string `json:"id"`
	AncienStatut  string `json:"ancien_statut"`
	NouveauStatut string `json:"nouveau_statut"`
}
