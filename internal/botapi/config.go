package botapi

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/gehirndienst/anniversary-go-bot/internal/database"
)

const (
	PlatformDiscord  = "discord"
	PlatformTelegram = "telegram"

	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"

	defaultStorePath   = "anniversaries.json"
	defaultWebhookPort = "2000"
)

var ErrMissingToken = errors.New("TOKEN is not set")

type BotWebhookConfig struct {
	URL  string
	Port string
}

type Config struct {
	Token       string
	Platform    string
	StoreDriver string
	StorePath   string
	Location    *time.Location
	Database    database.Config
	Webhook     *BotWebhookConfig
}

// LoadEnv loads envfile into the process environment. A missing file is
// fine when the variables are exported some other way.
func LoadEnv(envfile string) error {
	err := godotenv.Load(envfile)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load %s", envfile)
	}
	return nil
}

// ConfigFromEnv builds the bot configuration from the environment.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Token:       os.Getenv("TOKEN"),
		Platform:    envOr("PLATFORM", PlatformDiscord),
		StoreDriver: envOr("STORE_DRIVER", StoreDriverFile),
		StorePath:   envOr("STORE_PATH", defaultStorePath),
		Location:    time.Local,
		Database:    DatabaseConfigFromEnv(),
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	switch cfg.Platform {
	case PlatformDiscord, PlatformTelegram:
	default:
		return nil, errors.Errorf("unknown PLATFORM %q", cfg.Platform)
	}

	switch cfg.StoreDriver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return nil, errors.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if tz := os.Getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, errors.Wrapf(err, "load TIMEZONE %q", tz)
		}
		cfg.Location = loc
	}

	if webhookURL := os.Getenv("WEBHOOK_URL"); webhookURL != "" {
		cfg.Webhook = &BotWebhookConfig{
			URL:  webhookURL,
			Port: envOr("WEBHOOK_PORT", defaultWebhookPort),
		}
	}

	return cfg, nil
}

func DatabaseConfigFromEnv() database.Config {
	return database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
