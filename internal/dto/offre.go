package dto

// ── Offres de formation ──

// CreateOffreRequest création d'une offre.
// La combinaison (spécialité, établissement, diplôme, mode) est unique.
type CreateOffreRequest struct {
	IDSpecialite    string  `json:"id_specialite"     binding:"required,uuid"`
	IDEtabFormation string  `json:"id_etab_formation" binding:"required,uuid"`
	IDDiplome       string  `json:"id_diplome"        binding:"required,uuid"`
	IDMode          string  `json:"id_mode"           binding:"required,uuid"`
	DateDebut       *string `json:"date_debut"` // "2026-09-01"
	DateFin         *string `json:"date_fin"`
}

// UpdateOffreRequest mise à jour partielle d'une offre
type UpdateOffreRequest struct {
	DateDebut *string `json:"date_debut"`
	DateFin   *string `json:"date_fin"`
}

// OffreResponse représentation d'une offre, désignations et durée dérivées
// des enregistrements joints au moment de la lecture.
type OffreResponse struct {
	ID              string  `json:"id"`
	IDSpecialite    string  `json:"id_specialite"`
	IDEtabFormation string  `json:"id_etab_formation"`
	IDDiplome       string  `json:"id_diplome"`
	IDMode          string  `json:"id_mode"`
	DateDebut       string  `json:"date_debut,omitempty"`
	DateFin         string  `json:"date_fin,omitempty"`
	Statut          string  `json:"statut"`
	DesignationFr   string  `json:"designation_fr,omitempty"`
	DesignationAr   string  `json:"designation_ar,omitempty"`
	DureeFormation  string  `json:"duree_formation,omitempty"`
	Specialite      *NodeResponse        `json:"specialite,omitempty"`
	Diplome         *ReferentielResponse `json:"diplome,omitempty"`
	Mode            *ReferentielResponse `json:"mode,omitempty"`
}

// ── Lien spécialité-établissement ──

// CreateSpecialiteEtabRequest ouverture d'une spécialité dans un établissement
type CreateSpecialiteEtabRequest struct {
	IDSpecialite    string  `json:"id_specialite"     binding:"required,uuid"`
	IDEtabFormation string  `json:"id_etab_formation" binding:"required,uuid"`
	DateOuverture   *string `json:"date_ouverture"`
}

// SpecialiteEtabResponse représentation d'un lien spécialité-établissement
type SpecialiteEtabResponse struct {
	ID              string `json:"id"`
	IDSpecialite    string `json:"id_specialite"`
	IDEtabFormation string `json:"id_etab_formation"`
	DateOuverture   string `json:"date_ouverture,omitempty"`
	Actif           bool   `json:"actif"`
}
