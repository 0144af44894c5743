package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/idrissziadi/stage-sub004/config"
	"github.com/idrissziadi/stage-sub004/internal/api/handler"
	"github.com/idrissziadi/stage-sub004/internal/api/router"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/internal/service"
	"github.com/idrissziadi/stage-sub004/pkg/database"
	"github.com/idrissziadi/stage-sub004/pkg/jwt"
	applogger "github.com/idrissziadi/stage-sub004/pkg/logger"
	"github.com/idrissziadi/stage-sub004/pkg/redis"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Journalisation
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation des journaux: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Base de données
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données", zap.Error(err))
	}
	logger.Info("base de données connectée")

	// 3.1 Migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("accès au sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations de la base de données", zap.Error(err))
	}

	// 4. Redis (optionnel : mode dégradé sans liste noire de tokens)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("connexion Redis impossible, liste noire de tokens désactivée", zap.Error(err))
		rdb = nil
	}

	// 5. Gestionnaire JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injection des dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Routage
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Serveur HTTP avec arrêt gracieux
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP", zap.Error(err))
		}
	}()

	// 9. Signaux système
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal d'arrêt reçu, fermeture en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("fermeture du serveur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
