package main

import (
	"os"

	"inkwell/database"
	"inkwell/internal/config"
	"inkwell/internal/repository"
	"inkwell/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// One-shot admin reconciliation, for environments where the server itself
// must not seed (or to repair the admin table by hand).
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

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

	seeder := services.NewAdminSeeder(repository.NewAdminRepository(db), cfg.Admin)
	action, err := seeder.Ensure()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to reconcile admin account")
	}
	logger.Info().
		Str("email", cfg.Admin.Email).
		Str("action", string(action)).
		Msg("Admin account reconciled")
}
