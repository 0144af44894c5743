// Package apperr porte la taxonomie d'erreurs du domaine.
// Chaque erreur transporte sa nature (Kind), l'entité et le champ concernés,
// afin que la couche HTTP puisse rendre un message au niveau du champ.
package apperr

import (
	"errors"
	"fmt"
)

// Kind nature d'une erreur métier
type Kind string

const (
	// KindValidation contrainte de champ violée (longueur, format, plage de dates, enum)
	KindValidation Kind = "VALIDATION"
	// KindConflit contrainte d'unicité violée (username, code, email, clés composites)
	KindConflit Kind = "CONFLIT"
	// KindIntrouvable entité référencée inexistante
	KindIntrouvable Kind = "INTROUVABLE"
	// KindTransition transition d'état illégale dans un workflow
	KindTransition Kind = "TRANSITION_INVALIDE"
)

// Error erreur métier structurée
type Error struct {
	Kind    Kind
	Entite  string
	Champ   string
	Message string
}

func (e *Error) Error() string {
	if e.Champ != "" {
		return fmt.Sprintf("%s: %s.%s: %s", e.Kind, e.Entite, e.Champ, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Entite, e.Message)
}

// Is deux erreurs métier sont équivalentes si nature, entité et champ
// coïncident ; deux sentinelles distinctes ne se confondent donc pas.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Entite == t.Entite && e.Champ == t.Champ
}

// ── Constructeurs ──

// Validation contrainte de champ violée
func Validation(entite, champ, message string) *Error {
	return &Error{Kind: KindValidation, Entite: entite, Champ: champ, Message: message}
}

// Conflit contrainte d'unicité violée
func Conflit(entite, champ, message string) *Error {
	return &Error{Kind: KindConflit, Entite: entite, Champ: champ, Message: message}
}

// Introuvable entité référencée inexistante
func Introuvable(entite, message string) *Error {
	return &Error{Kind: KindIntrouvable, Entite: entite, Message: message}
}

// Transition transition d'état illégale
func Transition(entite, message string) *Error {
	return &Error{Kind: KindTransition, Entite: entite, Message: message}
}

// KindOf extrait la nature d'une erreur, ou "" si ce n'est pas une erreur métier
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
