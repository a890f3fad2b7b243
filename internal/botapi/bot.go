package botapi

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/gehirndienst/anniversary-go-bot/internal/anniversary"
	"github.com/gehirndienst/anniversary-go-bot/internal/command"
	"github.com/gehirndienst/anniversary-go-bot/internal/database"
)

type Bot struct {
	config    *Config
	transport Transport
	processor *command.Processor
	logger    *zerolog.Logger
	closer    io.Closer
}

// InitBot loads the configuration, opens the store and logs in to the
// messaging platform. Any error is fatal for the process.
func InitBot(ctx context.Context, envfile string) (*Bot, error) {
	envErr := LoadEnv(envfile)

	// can be instantiated without env params
	logger := GetLogger()

	if envErr != nil {
		logger.Error().Err(envErr).Msg("error loading .env file")
		return nil, envErr
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		logger.Error().Err(err).Msg("error reading configuration")
		return nil, err
	}

	backend, closer, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("driver", cfg.StoreDriver).Msg("error opening anniversary store")
		return nil, err
	}

	loc := cfg.Location
	ledger := anniversary.NewLedger(backend, anniversary.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))

	var transport Transport
	switch cfg.Platform {
	case PlatformTelegram:
		transport = NewTelegramTransport(cfg.Webhook, &logger)
	default:
		transport = NewDiscordTransport(&logger)
	}

	bot := &Bot{
		config:    cfg,
		transport: transport,
		processor: command.NewProcessor(ledger),
		logger:    &logger,
		closer:    closer,
	}

	bot.setHandlers()

	logger.Info().Str("platform", cfg.Platform).Msg("logging in")
	if err := transport.Login(ctx, cfg.Token); err != nil {
		logger.Error().Err(err).Msg("error logging in")
		bot.close()
		return nil, err
	}
	logger.Info().Msg("logged in successfully")

	return bot, nil
}

func openBackend(ctx context.Context, cfg *Config) (anniversary.Backend, io.Closer, error) {
	if cfg.StoreDriver == StoreDriverPostgres {
		pb, err := database.NewPostgresBackend(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pb, pb, nil
	}

	fb, err := anniversary.NewFileBackend(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return fb, nil, nil
}

func (b *Bot) setHandlers() {
	b.transport.OnMessage(chain(commandHandlerClosure(b),
		recoverMiddleware(b.logger),
		ignoreBotsMiddleware,
		loggingMiddleware(b.logger),
	))
}

// Run serves messages until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	defer b.close()

	if err := b.transport.Run(ctx); err != nil {
		return errors.Wrap(err, "run transport")
	}
	b.logger.Info().Str("platform", b.config.Platform).Msg("bot stopped")
	return nil
}

func (b *Bot) close() {
	if b.closer == nil {
		return
	}
	if err := b.closer.Close(); err != nil {
		b.logger.Error().Err(err).Msg("error closing anniversary store")
	}
}
