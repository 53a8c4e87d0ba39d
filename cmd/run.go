package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reveste/api"
	"reveste/config"
	"reveste/database"
	"reveste/repository"
	"reveste/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Get()
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	if err := database.MigrateUp(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	betRepo := repository.NewBetRepository(db)

	userService := service.NewUserService(userRepo, betRepo)
	betService := service.NewBetService(betRepo, userRepo)

	router := api.NewRouter(userService, betService)
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server listening on %s in %s mode", server.Addr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info("Shutdown completed")
	return nil
}
