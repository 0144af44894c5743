package dto

// ── Hiérarchie académique ──

// CreateNodeRequest création d'un nœud (branche, spécialité ou module).
// Le code est normalisé (trim + majuscules) avant le contrôle d'unicité,
// qui est propre au niveau, pas global.
type CreateNodeRequest struct {
	Code          string `json:"code"           binding:"required,min=2,max=50"`
	DesignationFr string `json:"designation_fr" binding:"required,min=2,max=255"`
	DesignationAr string `json:"designation_ar" binding:"required,min=2,max=255"`
	IDParent      string `json:"id_parent"      binding:"required,uuid"`
}

// UpdateNodeRequest mise à jour partielle d'un nœud
type UpdateNodeRequest struct {
	Code          *string `json:"code"           binding:"omitempty,min=2,max=50"`
	DesignationFr *string `json:"designation_fr" binding:"omitempty,min=2,max=255"`
	DesignationAr *string `json:"designation_ar" binding:"omitempty,min=2,max=255"`
}

// NodeResponse représentation d'un nœud de la hiérarchie
type NodeResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	DesignationFr string `json:"designation_fr"`
	DesignationAr string `json:"designation_ar"`
	IDParent      string `json:"id_parent"`
}

// DeleteNodeRequest suppression d'un nœud.
// La suppression cascade sur tous les descendants : l'appelant doit
// confirmer dès qu'au moins une ligne dépendante serait emportée.
type DeleteNodeRequest struct {
	Confirme bool `json:"confirme"`
}

// DeleteNodePreview aperçu retourné quand la confirmation manque
type DeleteNodePreview struct {
	Dependants int64 `json:"dependants"`
	Supprime   bool  `json:"supprime"`
}
