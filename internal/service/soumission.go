package service

import (
	"strings"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Workflow de revue commun aux soumissions ──
// Cours, mémoires et programmes suivent le même schéma : dépôt en état
// d'attente sans observation, puis une revue unique qui fixe à la fois
// l'état terminal et l'observation du relecteur. Les états terminaux
// sont définitifs ; la première observation n'est jamais écrasée.

var (
	ErrSoumissionIntrouvable = apperr.Introuvable("Soumission", "soumission inexistante")
	ErrDejaRevue             = apperr.Transition("Soumission", "la soumission a déjà été revue")
	ErrDecisionInvalide      = apperr.Validation("Soumission", "decision", "décision inconnue")
	ErrObservationRequise    = apperr.Validation("Soumission", "observation", "observation du relecteur obligatoire")
	ErrFichierNonPDF         = apperr.Validation("Soumission", "fichierpdf", "le chemin du fichier doit se terminer par .pdf")
)

// deciderStatut traduit la décision de revue vers le vocabulaire d'états
// de l'entité. enAttente sert de garde : la soumission doit encore y être.
func deciderStatut(req *dto.ReviewRequest, statutAccepte, statutRefuse string) (string, error) {
	if strings.TrimSpace(req.Observation) == "" {
		return "", ErrObservationRequise
	}
	switch req.Decision {
	case "accept":
		return statutAccepte, nil
	case "reject":
		return statutRefuse, nil
	default:
		return "", ErrDecisionInvalide
	}
}

// verifierFichierPDF applique la règle de dépôt : chemin vide admis,
// sinon extension .pdf exigée.
func verifierFichierPDF(chemin string) error {
	if !CheminPDFValide(chemin) {
		return ErrFichierNonPDF
	}
	return nil
}
