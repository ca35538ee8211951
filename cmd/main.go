package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/database"
	"inkwell/internal/config"
	"inkwell/internal/controllers"
	"inkwell/internal/repository"
	"inkwell/internal/services"
	"inkwell/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("Starting inkwell API server...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("Connected to database")

	articleRepo := repository.NewArticleRepository(db)
	tagRepo := repository.NewTagRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Bootstrap reconciliation runs before the router accepts traffic and
	// never in production.
	if !cfg.Server.Production {
		seeder := services.NewAdminSeeder(adminRepo, cfg.Admin)
		action, err := seeder.Ensure()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to reconcile admin account")
		}
		logger.Info().
			Str("email", cfg.Admin.Email).
			Str("action", string(action)).
			Msg("Admin account reconciled")
	}

	tokens := services.NewTokenService(cfg.Auth.JWTSecret)

	publicController := controllers.NewPublicController(articleRepo, tagRepo, logger)
	articleController := controllers.NewArticleController(articleRepo, logger)
	tagController := controllers.NewTagController(tagRepo, logger)
	authController := controllers.NewAuthController(adminRepo, tokens, logger)

	if cfg.Server.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "inkwell API is running",
			"status":  "healthy",
		})
	})

	routes.RegisterPublicRoutes(router, publicController)
	routes.RegisterAdminRoutes(router, tokens, authController, articleController, tagController)

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	logger.Info().Msg("Server exited gracefully")
}
