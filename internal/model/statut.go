package model

// ── Rôles de compte ──

const (
	RoleStagiaire     = "Stagiaire"
	RoleEnseignant    = "Enseignant"
	RoleEtabFormation = "EtablissementFormation"
	RoleEtabRegionale = "EtablissementRegionale"
	RoleEtabNationale = "EtablissementNationale"
)

// RolesValides ensemble des rôles admis à la création d'un compte
var RolesValides = map[string]bool{
	RoleStagiaire:     true,
	RoleEnseignant:    true,
	RoleEtabFormation: true,
	RoleEtabRegionale: true,
	RoleEtabNationale: true,
}

// ── Cycle de vie d'une offre ──

const (
	OffreBrouillon = "brouillon"
	OffreActive    = "active"
	OffreArchivee  = "archivee"
)

// OffreTransitions transitions admises (linéaire, sans retour en arrière)
var OffreTransitions = map[string]string{
	OffreBrouillon: OffreActive,
	OffreActive:    OffreArchivee,
}

// ── Workflow d'approbation des soumissions ──
// Cours et Programme partagent un vocabulaire, Mémoire en a un autre ;
// la forme du workflow (en attente → accepté | refusé, états terminaux) est identique.

const (
	CoursEnAttente = "en_attente"
	CoursValide    = "valide"
	CoursRefuse    = "refuse"

	MemoireEnAttente = "en_attente"
	MemoireAccepte   = "accepte"
	MemoireRejete    = "rejete"
)

// ── Statut d'inscription ──

const (
	InscriptionEnAttente = "en_attente"
	InscriptionAcceptee  = "acceptee"
	InscriptionRefusee   = "refusee"
	InscriptionAnnulee   = "annulee"
)

// InscriptionTransitions machine d'états stricte :
// en_attente → {acceptee, refusee} ; tout état non terminal → annulee.
// refusee et annulee sont terminaux.
var InscriptionTransitions = map[string]map[string]bool{
	InscriptionEnAttente: {
		InscriptionAcceptee: true,
		InscriptionRefusee:  true,
		InscriptionAnnulee:  true,
	},
	InscriptionAcceptee: {
		InscriptionAnnulee: true,
	},
}

// ── Semestres d'affectation ──

// SemestresValides inclut la sentinelle chaîne vide « non précisé » ;
// la recherche par égalité exacte impose la sentinelle plutôt que NULL.
var SemestresValides = map[string]bool{
	"S1": true, "S2": true, "S3": true, "S4": true,
	"Premier": true, "Deuxième": true, "": true,
}
