package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	dejaInscrit := Conflit("Inscription", "id_offre", "stagiaire déjà inscrit à cette offre")
	combinaison := Conflit("EnsModule", "combinaison", "affectation déjà enregistrée")

	if !errors.Is(dejaInscrit, dejaInscrit) {
		t.Error("une erreur doit se reconnaître elle-même")
	}
	// même nature, entités distinctes : pas équivalentes
	if errors.Is(dejaInscrit, combinaison) {
		t.Error("deux conflits d'entités différentes ne doivent pas se confondre")
	}
	// une erreur enveloppée reste reconnaissable
	enveloppee := fmt.Errorf("changement de statut: %w", dejaInscrit)
	if !errors.Is(enveloppee, dejaInscrit) {
		t.Error("l'erreur enveloppée devrait correspondre à sa sentinelle")
	}
	if errors.Is(errors.New("autre"), dejaInscrit) {
		t.Error("une erreur étrangère ne doit pas correspondre")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(Introuvable("Offre", "offre inexistante")); got != KindIntrouvable {
		t.Errorf("KindOf = %q, attendu %q", got, KindIntrouvable)
	}
	if got := KindOf(errors.New("autre")); got != "" {
		t.Errorf("KindOf sur une erreur étrangère = %q, attendu vide", got)
	}
}
