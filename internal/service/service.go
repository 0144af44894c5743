package service

import (
	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/config"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/redis"
)

// Service point d'entrée agrégé de tous les services métier
type Service struct {
	Auth          AuthService
	Compte        CompteService
	Stagiaire     StagiaireService
	Enseignant    EnseignantService
	Etablissement EtablissementService
	Hierarchie    HierarchieService
	Referentiel   ReferentielService
	Offre         OffreService
	Cours         CoursService
	Memoire       MemoireService
	Programme     ProgrammeService
	Inscription   InscriptionService
	Affectation   AffectationService
	Export        ExportService
}

// NewService construit l'agrégat des services
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(repo, jwtMgr, redisClient, cfg.Auth.AccessTokenTTL, logger),
		Compte:        NewCompteService(repo, cfg.Auth.BcryptCost, logger),
		Stagiaire:     NewStagiaireService(repo, logger),
		Enseignant:    NewEnseignantService(repo, logger),
		Etablissement: NewEtablissementService(repo, logger),
		Hierarchie:    NewHierarchieService(repo, logger),
		Referentiel:   NewReferentielService(repo, logger),
		Offre:         NewOffreService(repo, logger),
		Cours:         NewCoursService(repo, logger),
		Memoire:       NewMemoireService(repo, logger),
		Programme:     NewProgrammeService(repo, logger),
		Inscription:   NewInscriptionService(repo, logger),
		Affectation:   NewAffectationService(repo, logger),
		Export:        NewExportService(repo, logger),
	}
}
