package main

import (
	"flag"

	"github.com/gehirndienst/anniversary-go-bot/internal/botapi"
	"github.com/gehirndienst/anniversary-go-bot/internal/database"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	migrationPath := flag.String("migration-path", "migrations", "Path to migration files from the pwd(!)")
	envFile := flag.String("env-file", ".env", "Path to .env file from the pwd(!)")
	flag.Parse()

	envErr := botapi.LoadEnv(*envFile)
	logger := botapi.GetLogger()
	if envErr != nil {
		logger.Fatal().Err(envErr).Msg("Error loading .env file")
	}

	cfg := botapi.DatabaseConfigFromEnv()

	logger.Info().Str("direction", *direction).Msg("Running migration")
	if err := database.Migrate(cfg, *migrationPath, database.Direction(*direction)); err != nil {
		logger.Fatal().Err(err).Msg("Error running migration")
	}
	logger.Info().Str("direction", *direction).Msg("Migration completed successfully")
}
