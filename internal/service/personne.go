package service

import (
	"time"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Validation commune des profils personnes ──

var (
	ErrTelephoneInvalide     = apperr.Validation("Personne", "telephone", "numéro de téléphone invalide")
	ErrDateNaissanceInvalide = apperr.Validation("Personne", "date_naissance", "date de naissance hors bornes")
	ErrDateInvalide          = apperr.Validation("Personne", "date_naissance", "format de date attendu : AAAA-MM-JJ")
)

// validerPersonne contrôle et normalise les champs optionnels communs
// aux stagiaires et enseignants : date de naissance, email, téléphone.
func validerPersonne(dateNaissance string, email *string, telephone string) (*time.Time, *string, error) {
	var dn *time.Time
	if dateNaissance != "" {
		d, err := ParseDate(dateNaissance)
		if err != nil {
			return nil, nil, ErrDateInvalide
		}
		if !DateNaissanceValide(d) {
			return nil, nil, ErrDateNaissanceInvalide
		}
		dn = &d
	}

	var emailNorm *string
	if email != nil && *email != "" {
		e := NormaliserEmail(*email)
		emailNorm = &e
	}

	if telephone != "" && !TelephoneValide(telephone) {
		return nil, nil, ErrTelephoneInvalide
	}

	return dn, emailNorm, nil
}

func toPersonneResponse(id, nomFr, nomAr, prenomFr, prenomAr string, dn *time.Time, email *string, tel string, idCompte *string, grade *model.Grade) dto.PersonneResponse {
	resp := dto.PersonneResponse{
		ID:        id,
		NomFr:     nomFr,
		NomAr:     nomAr,
		PrenomFr:  prenomFr,
		PrenomAr:  prenomAr,
		Email:     email,
		Telephone: tel,
		IDCompte:  idCompte,
	}
	if dn != nil {
		resp.DateNaissance = FormatDate(*dn)
	}
	if grade != nil {
		resp.Grade = &dto.ReferentielResponse{
			ID:            grade.ID,
			Code:          grade.Code,
			DesignationFr: grade.DesignationFr,
			DesignationAr: grade.DesignationAr,
		}
	}
	return resp
}
