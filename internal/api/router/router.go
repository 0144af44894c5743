package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/config"
	"github.com/idrissziadi/stage-sub004/internal/api/handler"
	"github.com/idrissziadi/stage-sub004/internal/api/middleware"
	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	"github.com/idrissziadi/stage-sub004/pkg/redis"
)

// Setup initialise et retourne le moteur de routage Gin.
// Les garde-fous de rôle suivent la hiérarchie des établissements : le
// national administre les référentiels et tranche les programmes, le
// régional porte la hiérarchie académique et la revue des cours, la
// formation gère ses offres et ses inscriptions.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // API JSON, 1 MiB suffit

	// ── Sonde de vie ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// raccourcis de rôles
	nationale := middleware.RoleAuth(model.RoleEtabNationale)
	regionaleEtPlus := middleware.RoleAuth(model.RoleEtabRegionale, model.RoleEtabNationale)
	formationEtPlus := middleware.RoleAuth(model.RoleEtabFormation, model.RoleEtabRegionale, model.RoleEtabNationale)
	stagiaire := middleware.RoleAuth(model.RoleStagiaire)
	enseignant := middleware.RoleAuth(model.RoleEnseignant)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentification (sans token, cadencée contre la force brute)
		auth := v1.Group("/auth", middleware.RateLimit(5, 10))
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// routes authentifiées
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// comptes d'identité
			comptes := authorized.Group("/comptes", nationale)
			{
				comptes.POST("", h.Compte.Create)
				comptes.GET("", h.Compte.List)
				comptes.GET("/:id", h.Compte.GetByID)
			}

			// profils stagiaires
			stagiaires := authorized.Group("/stagiaires")
			{
				stagiaires.GET("/moi", stagiaire, h.Stagiaire.Me)
				stagiaires.POST("", formationEtPlus, h.Stagiaire.Create)
				stagiaires.GET("", formationEtPlus, h.Stagiaire.List)
				stagiaires.GET("/:id", h.Stagiaire.GetByID)
				stagiaires.PATCH("/:id", formationEtPlus, h.Stagiaire.Update)
				stagiaires.DELETE("/:id", formationEtPlus, h.Stagiaire.Delete)
				stagiaires.POST("/:id/compte", nationale, h.Stagiaire.LierCompte)
				stagiaires.DELETE("/:id/compte", nationale, h.Stagiaire.DelierCompte)
			}

			// profils enseignants
			enseignants := authorized.Group("/enseignants")
			{
				enseignants.GET("/moi", enseignant, h.Enseignant.Me)
				enseignants.POST("", formationEtPlus, h.Enseignant.Create)
				enseignants.GET("", formationEtPlus, h.Enseignant.List)
				enseignants.GET("/:id", h.Enseignant.GetByID)
				enseignants.PATCH("/:id", formationEtPlus, h.Enseignant.Update)
				enseignants.DELETE("/:id", formationEtPlus, h.Enseignant.Delete)
				enseignants.POST("/:id/compte", nationale, h.Enseignant.LierCompte)
				enseignants.DELETE("/:id/compte", nationale, h.Enseignant.DelierCompte)
			}

			// établissements, trois niveaux
			etabs := authorized.Group("/etablissements")
			{
				etabs.POST("/nationales", nationale, h.Etablissement.CreateNationale)
				etabs.GET("/nationales", h.Etablissement.ListNationales)
				etabs.GET("/nationales/:id", h.Etablissement.GetNationale)
				etabs.POST("/nationales/:id/compte", nationale, h.Etablissement.LierCompteNationale)
				etabs.DELETE("/nationales/:id/compte", nationale, h.Etablissement.DelierCompteNationale)

				etabs.POST("/regionales", nationale, h.Etablissement.CreateRegionale)
				etabs.GET("/regionales", h.Etablissement.ListRegionales)
				etabs.GET("/regionales/:id", h.Etablissement.GetRegionale)
				etabs.DELETE("/regionales/:id", nationale, h.Etablissement.DeleteRegionale)
				etabs.POST("/regionales/:id/compte", nationale, h.Etablissement.LierCompteRegionale)
				etabs.DELETE("/regionales/:id/compte", nationale, h.Etablissement.DelierCompteRegionale)

				etabs.POST("/formations", regionaleEtPlus, h.Etablissement.CreateFormation)
				etabs.GET("/formations", h.Etablissement.ListFormations)
				etabs.GET("/formations/:id", h.Etablissement.GetFormation)
				etabs.DELETE("/formations/:id", regionaleEtPlus, h.Etablissement.DeleteFormation)
				etabs.POST("/formations/:id/compte", nationale, h.Etablissement.LierCompteFormation)
				etabs.DELETE("/formations/:id/compte", nationale, h.Etablissement.DelierCompteFormation)
			}

			// hiérarchie académique
			branches := authorized.Group("/branches")
			{
				branches.POST("", regionaleEtPlus, h.Hierarchie.CreateBranche)
				branches.GET("", h.Hierarchie.ListBranches)
				branches.PATCH("/:id", regionaleEtPlus, h.Hierarchie.UpdateBranche)
				branches.DELETE("/:id", regionaleEtPlus, h.Hierarchie.DeleteBranche)
			}
			specialites := authorized.Group("/specialites")
			{
				specialites.POST("", regionaleEtPlus, h.Hierarchie.CreateSpecialite)
				specialites.GET("", h.Hierarchie.ListSpecialites)
				specialites.PATCH("/:id", regionaleEtPlus, h.Hierarchie.UpdateSpecialite)
				specialites.DELETE("/:id", regionaleEtPlus, h.Hierarchie.DeleteSpecialite)
			}
			modules := authorized.Group("/modules")
			{
				modules.POST("", regionaleEtPlus, h.Hierarchie.CreateModule)
				modules.GET("", h.Hierarchie.ListModules)
				modules.PATCH("/:id", regionaleEtPlus, h.Hierarchie.UpdateModule)
				modules.DELETE("/:id", regionaleEtPlus, h.Hierarchie.DeleteModule)
			}

			// référentiels plats
			grades := authorized.Group("/grades")
			{
				grades.POST("", nationale, h.Referentiel.CreateGrade)
				grades.GET("", h.Referentiel.ListGrades)
				grades.PATCH("/:id", nationale, h.Referentiel.UpdateGrade)
				grades.DELETE("/:id", nationale, h.Referentiel.DeleteGrade)
			}
			diplomes := authorized.Group("/diplomes")
			{
				diplomes.POST("", nationale, h.Referentiel.CreateDiplome)
				diplomes.GET("", h.Referentiel.ListDiplomes)
				diplomes.PATCH("/:id", nationale, h.Referentiel.UpdateDiplome)
				diplomes.DELETE("/:id", nationale, h.Referentiel.DeleteDiplome)
			}
			modes := authorized.Group("/modes")
			{
				modes.POST("", nationale, h.Referentiel.CreateMode)
				modes.GET("", h.Referentiel.ListModes)
				modes.PATCH("/:id", nationale, h.Referentiel.UpdateMode)
				modes.DELETE("/:id", nationale, h.Referentiel.DeleteMode)
			}

			// offres de formation
			offres := authorized.Group("/offres")
			{
				offres.POST("", formationEtPlus, h.Offre.Create)
				offres.GET("", h.Offre.List)
				offres.GET("/:id", h.Offre.GetByID)
				offres.PATCH("/:id", formationEtPlus, h.Offre.Update)
				offres.DELETE("/:id", formationEtPlus, h.Offre.Delete)
				offres.POST("/:id/activer", formationEtPlus, h.Offre.Activer)
				offres.POST("/:id/archiver", formationEtPlus, h.Offre.Archiver)
				offres.GET("/:id/export/inscriptions", formationEtPlus, h.Export.Inscriptions)
				offres.GET("/:id/export/calendrier", h.Export.Calendrier)
			}

			// spécialités ouvertes dans un établissement
			specialitesOuvertes := authorized.Group("/specialites-ouvertes")
			{
				specialitesOuvertes.POST("", formationEtPlus, h.Offre.OuvrirSpecialite)
				specialitesOuvertes.GET("", h.Offre.ListSpecialitesOuvertes)
				specialitesOuvertes.DELETE("", formationEtPlus, h.Offre.FermerSpecialite)
			}

			// soumissions : cours, mémoires, programmes
			cours := authorized.Group("/cours")
			{
				cours.POST("", enseignant, h.Cours.Deposer)
				cours.GET("/moi", enseignant, h.Cours.MesCours)
				cours.GET("", h.Cours.List)
				cours.GET("/:id", h.Cours.GetByID)
				cours.POST("/:id/revue", regionaleEtPlus, h.Cours.Revoir)
				cours.DELETE("/:id", regionaleEtPlus, h.Cours.Delete)
			}
			memoires := authorized.Group("/memoires")
			{
				memoires.POST("", stagiaire, h.Memoire.Deposer)
				memoires.GET("/moi", stagiaire, h.Memoire.MesMemoires)
				memoires.GET("", h.Memoire.List)
				memoires.GET("/:id", h.Memoire.GetByID)
				memoires.POST("/:id/revue", formationEtPlus, h.Memoire.Revoir)
				memoires.DELETE("/:id", formationEtPlus, h.Memoire.Delete)
			}
			programmes := authorized.Group("/programmes")
			{
				programmes.POST("", middleware.RoleAuth(model.RoleEtabRegionale), h.Programme.Deposer)
				programmes.GET("", h.Programme.List)
				programmes.GET("/:id", h.Programme.GetByID)
				programmes.POST("/:id/revue", nationale, h.Programme.Revoir)
				programmes.DELETE("/:id", nationale, h.Programme.Delete)
			}

			// inscriptions
			inscriptions := authorized.Group("/inscriptions")
			{
				inscriptions.POST("", stagiaire, h.Inscription.Inscrire)
				inscriptions.GET("/moi", stagiaire, h.Inscription.MesInscriptions)
				inscriptions.GET("", formationEtPlus, h.Inscription.List)
				inscriptions.GET("/:id", h.Inscription.GetByID)
				inscriptions.POST("/:id/statut", formationEtPlus, h.Inscription.ChangerStatut)
				inscriptions.POST("/statut", formationEtPlus, h.Inscription.ChangerStatutEnMasse)
			}

			// affectations enseignant↔module
			affectations := authorized.Group("/affectations")
			{
				affectations.POST("", formationEtPlus, h.Affectation.Affecter)
				affectations.GET("", h.Affectation.List)
				affectations.PATCH("/semestre", formationEtPlus, h.Affectation.ChangerSemestre)
				affectations.DELETE("", formationEtPlus, h.Affectation.Retirer)
			}
		}
	}

	return r
}
