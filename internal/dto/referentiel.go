package dto

// ── Référentiels (grades, diplômes, modes de formation) ──

// CreateReferentielRequest création d'une entrée de référentiel
type CreateReferentielRequest struct {
	Code          string `json:"code"           binding:"required,min=2,max=50"`
	DesignationFr string `json:"designation_fr" binding:"required,min=2,max=255"`
	DesignationAr string `json:"designation_ar" binding:"omitempty,max=255"`
}

// UpdateReferentielRequest mise à jour partielle d'une entrée
type UpdateReferentielRequest struct {
	Code          *string `json:"code"           binding:"omitempty,min=2,max=50"`
	DesignationFr *string `json:"designation_fr" binding:"omitempty,min=2,max=255"`
	DesignationAr *string `json:"designation_ar" binding:"omitempty,max=255"`
}

// ReferentielResponse représentation d'une entrée de référentiel
type ReferentielResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	DesignationFr string `json:"designation_fr"`
	DesignationAr string `json:"designation_ar,omitempty"`
}
