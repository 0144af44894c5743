package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/dto"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

var (
	ErrInscriptionIntrouvable = apperr.Introuvable("Inscription", "inscription inexistante")
	ErrDejaInscrit            = apperr.Conflit("Inscription", "paire", "le stagiaire est déjà inscrit à cette offre")
	ErrTransitionInscription  = apperr.Transition("Inscription", "transition de statut non admise")
	ErrOffreNonActive         = apperr.Validation("Inscription", "id_offre", "l'offre n'est pas ouverte aux inscriptions")
)

// InscriptionService inscriptions des stagiaires aux offres.
// La machine d'états est stricte : en_attente → {acceptee, refusee, annulee},
// acceptee → annulee ; refusee et annulee sont terminaux.
type InscriptionService interface {
	Inscrire(ctx context.Context, idStagiaire string, req *dto.CreateInscriptionRequest) (*dto.InscriptionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.InscriptionResponse, error)
	ChangerStatut(ctx context.Context, id string, req *dto.UpdateInscriptionStatutRequest) (*dto.InscriptionResponse, *dto.TransitionEvent, error)
	ChangerStatutEnMasse(ctx context.Context, req *dto.BulkInscriptionStatutRequest) ([]dto.TransitionEvent, error)
	ListByOffre(ctx context.Context, idOffre string) ([]dto.InscriptionResponse, error)
	ListByStagiaire(ctx context.Context, idStagiaire string) ([]dto.InscriptionResponse, error)
}

type inscriptionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInscriptionService crée l'InscriptionService
func NewInscriptionService(repo *repository.Repository, logger *zap.Logger) InscriptionService {
	return &inscriptionService{repo: repo, logger: logger}
}

// Inscrire crée une inscription en attente. Un stagiaire ne peut
// s'inscrire qu'une fois à la même offre ; la date d'inscription
// vaut la date du jour quand elle n'est pas fournie.
func (s *inscriptionService) Inscrire(ctx context.Context, idStagiaire string, req *dto.CreateInscriptionRequest) (*dto.InscriptionResponse, error) {
	if _, err := s.repo.Stagiaire.GetByID(ctx, idStagiaire); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireIntrouvable
		}
		return nil, err
	}

	offre, err := s.repo.Offre.GetByID(ctx, req.IDOffre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOffreIntrouvable
		}
		return nil, err
	}
	if offre.Statut != model.OffreActive {
		return nil, ErrOffreNonActive
	}

	if _, err := s.repo.Inscription.GetByStagiaireEtOffre(ctx, idStagiaire, req.IDOffre); err == nil {
		return nil, ErrDejaInscrit
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dateInscription := time.Now()
	if req.DateInscription != nil && *req.DateInscription != "" {
		d, err := ParseDate(*req.DateInscription)
		if err != nil {
			return nil, ErrDateInvalide
		}
		dateInscription = d
	}

	inscription := &model.Inscription{
		IDStagiaire:     idStagiaire,
		IDOffre:         req.IDOffre,
		DateInscription: dateInscription,
		Statut:          model.InscriptionEnAttente,
	}
	if err := s.repo.Inscription.Create(ctx, inscription); err != nil {
		s.logger.Error("création de l'inscription", zap.Error(err))
		return nil, err
	}

	resp := toInscriptionResponse(inscription)
	return &resp, nil
}

func (s *inscriptionService) GetByID(ctx context.Context, id string) (*dto.InscriptionResponse, error) {
	inscription, err := s.repo.Inscription.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInscriptionIntrouvable
		}
		return nil, err
	}
	resp := toInscriptionResponse(inscription)
	return &resp, nil
}

// ChangerStatut applique une transition de la machine d'états
func (s *inscriptionService) ChangerStatut(ctx context.Context, id string, req *dto.UpdateInscriptionStatutRequest) (*dto.InscriptionResponse, *dto.TransitionEvent, error) {
	var inscription *model.Inscription
	var event *dto.TransitionEvent

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		insc, ev, err := transitionnerInscription(ctx, tx, id, req.Statut)
		if err != nil {
			return err
		}
		inscription, event = insc, ev
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("statut d'inscription modifié",
		zap.String("id", id),
		zap.String("ancien", event.AncienStatut),
		zap.String("nouveau", event.NouveauStatut))

	resp := toInscriptionResponse(inscription)
	return &resp, event, nil
}

// ChangerStatutEnMasse applique la même transition à un lot d'inscriptions.
// Tout ou rien : la première ligne qui refuse la transition annule le lot
// entier, aucun appliqué partiel.
func (s *inscriptionService) ChangerStatutEnMasse(ctx context.Context, req *dto.BulkInscriptionStatutRequest) ([]dto.TransitionEvent, error) {
	var events []dto.TransitionEvent

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		events = events[:0]
		for _, id := range req.IDs {
			_, ev, err := transitionnerInscription(ctx, tx, id, req.Statut)
			if err != nil {
				return err
			}
			events = append(events, *ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("statuts d'inscriptions modifiés en masse",
		zap.Int("lignes", len(events)), zap.String("statut", req.Statut))
	return events, nil
}

// transitionnerInscription vérifie la transition contre la machine
// d'états puis écrit le nouveau statut, le tout sur l'agrégat transactionnel.
func transitionnerInscription(ctx context.Context, tx *repository.Repository, id, cible string) (*model.Inscription, *dto.TransitionEvent, error) {
	inscription, err := tx.Inscription.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInscriptionIntrouvable
		}
		return nil, nil, err
	}

	if !model.InscriptionTransitions[inscription.Statut][cible] {
		return nil, nil, ErrTransitionInscription
	}

	ancien := inscription.Statut
	inscription.Statut = cible
	if err := tx.Inscription.Update(ctx, inscription); err != nil {
		return nil, nil, err
	}

	return inscription, &dto.TransitionEvent{
		Entite: "Inscription", ID: inscription.ID,
		AncienStatut: ancien, NouveauStatut: cible,
	}, nil
}

func (s *inscriptionService) ListByOffre(ctx context.Context, idOffre string) ([]dto.InscriptionResponse, error) {
	inscriptions, err := s.repo.Inscription.ListByOffre(ctx, idOffre)
	if err != nil {
		return nil, err
	}
	return toInscriptionResponses(inscriptions), nil
}

func (s *inscriptionService) ListByStagiaire(ctx context.Context, idStagiaire string) ([]dto.InscriptionResponse, error) {
	inscriptions, err := s.repo.Inscription.ListByStagiaire(ctx, idStagiaire)
	if err != nil {
		return nil, err
	}
	return toInscriptionResponses(inscriptions), nil
}

func toInscriptionResponse(inscription *model.Inscription) dto.InscriptionResponse {
	resp := dto.InscriptionResponse{
		ID:              inscription.ID,
		IDStagiaire:     inscription.IDStagiaire,
		IDOffre:         inscription.IDOffre,
		DateInscription: FormatDate(inscription.DateInscription),
		Statut:          inscription.Statut,
	}
	if inscription.Stagiaire != nil {
		st := inscription.Stagiaire
		personne := toPersonneResponse(st.ID, st.NomFr, st.NomAr, st.PrenomFr, st.PrenomAr,
			st.DateNaissance, st.Email, st.Telephone, st.IDCompte, nil)
		resp.Stagiaire = &personne
	}
	return resp
}

func toInscriptionResponses(inscriptions []model.Inscription) []dto.InscriptionResponse {
	result := make([]dto.InscriptionResponse, 0, len(inscriptions))
	for i := range inscriptions {
		result = append(result, toInscriptionResponse(&inscriptions[i]))
	}
	return result
}
