package database

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gehirndienst/anniversary-go-bot/internal/anniversary"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "5432", User: "bot", Password: "secret", Name: "anniversaries"}

	assert.Equal(t, "host=localhost port=5432 user=bot password=secret dbname=anniversaries sslmode=disable", cfg.DSN())
}

func TestMigrate_InvalidDirection(t *testing.T) {
	err := Migrate(Config{}, "../../migrations", Direction("sideways"))
	assert.Error(t, err)
}

func TestPostgresBackend(t *testing.T) {
	_ = godotenv.Load("../../.env")
	if os.Getenv("DB_HOST") == "" {
		t.Skip("no DB_HOST in env, skipping TestPostgresBackend")
	}

	cfg := Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
	require.NoError(t, Migrate(cfg, "../../migrations", Up))

	ctx := context.Background()
	backend, err := NewPostgresBackend(ctx, cfg)
	require.NoError(t, err)
	defer backend.Close()

	records := []anniversary.Record{
		anniversary.NewRecord("20241020", "second by date, first stored"),
		anniversary.NewRecord("20200101", "우리 N주년"),
	}
	require.NoError(t, backend.Save(ctx, records))

	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	require.NoError(t, backend.Save(ctx, nil))
	loaded, err = backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
