package service

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// Fonctions de normalisation pures, appelées à la frontière de chaque
// création/mise à jour. Aucune dépendance à la base : les règles se
// testent unitairement.

// NormaliserCode trim + majuscules ; appliqué avant tout contrôle d'unicité
func NormaliserCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ErrCodeInvalide longueur hors bornes après normalisation
var ErrCodeInvalide = apperr.Validation("Code", "code", "le code doit compter entre 2 et 50 caractères")

// NormaliserCodeValide normalise le code puis exige entre 2 et 50
// caractères ; le trim peut faire passer une valeur brute admise
// sous le minimum
func NormaliserCodeValide(code string) (string, error) {
	code = NormaliserCode(code)
	if n := utf8.RuneCountInString(code); n < 2 || n > 50 {
		return "", ErrCodeInvalide
	}
	return code, nil
}

// NormaliserEmail trim + minuscules ; appliqué avant le contrôle d'unicité
func NormaliserEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormaliserNom nom de famille en majuscules
func NormaliserNom(nom string) string {
	return strings.ToUpper(strings.TrimSpace(nom))
}

// NormaliserPrenom casse de titre mot à mot ("jean pierre" → "Jean Pierre")
func NormaliserPrenom(prenom string) string {
	mots := strings.Fields(strings.TrimSpace(prenom))
	for i, mot := range mots {
		mots[i] = titreMot(mot)
	}
	return strings.Join(mots, " ")
}

// titreMot première lettre en majuscule, le reste en minuscules ;
// les segments séparés par un tiret sont traités indépendamment
func titreMot(mot string) string {
	segments := strings.Split(mot, "-")
	for i, seg := range segments {
		runes := []rune(strings.ToLower(seg))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		segments[i] = string(runes)
	}
	return strings.Join(segments, "-")
}

var telephoneRe = regexp.MustCompile(`^\+?[0-9(][0-9 ()\-]*$`)

// TelephoneValide plus optionnel en tête, puis chiffres, espaces,
// tirets et parenthèses ; au moins un chiffre exigé
func TelephoneValide(tel string) bool {
	return telephoneRe.MatchString(tel) && strings.ContainsAny(tel, "0123456789")
}

// dateNaissanceMin borne basse de la plage admise
var dateNaissanceMin = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// DateNaissanceValide dans [1900-01-01, aujourd'hui]
func DateNaissanceValide(d time.Time) bool {
	if d.Before(dateNaissanceMin) {
		return false
	}
	return !d.After(time.Now())
}

// CheminPDFValide le chemin, quand il est renseigné, doit se terminer
// par .pdf ; contrôle uniforme pour les trois types de soumission
func CheminPDFValide(chemin string) bool {
	if chemin == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(chemin), ".pdf")
}

// ParseDate analyse une date au format "2006-01-02"
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// FormatDate rend une date au format "2006-01-02"
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
