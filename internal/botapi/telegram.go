package botapi

import (
	"context"
	"net/http"
	"time"

	telegramBot "github.com/go-telegram/bot"
	telegramBotModels "github.com/go-telegram/bot/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TelegramTransport delivers text messages from telegram chats, using a
// webhook when one is configured and long polling otherwise.
type TelegramTransport struct {
	bot           *telegramBot.Bot
	webhookConfig *BotWebhookConfig
	handler       Handler
	logger        *zerolog.Logger
}

func NewTelegramTransport(webhookConfig *BotWebhookConfig, logger *zerolog.Logger) *TelegramTransport {
	return &TelegramTransport{
		webhookConfig: webhookConfig,
		logger:        logger,
	}
}

func (t *TelegramTransport) OnMessage(h Handler) {
	t.handler = h
}

// Login creates the client; the token is checked with a getMe call.
func (t *TelegramTransport) Login(_ context.Context, token string) error {
	tOpts := []telegramBot.Option{
		telegramBot.WithDefaultHandler(t.dispatch),
	}

	tBot, err := telegramBot.New(token, tOpts...)
	if err != nil {
		return errors.Wrap(err, "create telegram bot")
	}
	t.bot = tBot
	return nil
}

func (t *TelegramTransport) Run(ctx context.Context) error {
	if t.bot == nil {
		return errors.New("telegram transport is not logged in")
	}

	if t.webhookConfig != nil {
		err := t.runWebhook(ctx)
		if err == nil {
			return nil
		}
		t.logger.Warn().Err(err).Msg("falling back to long polling")
	}

	t.logger.Info().Msg("running telegram bot with long polling")
	t.bot.Start(ctx)
	return nil
}

func (t *TelegramTransport) runWebhook(ctx context.Context) error {
	if _, err := t.bot.SetWebhook(ctx, &telegramBot.SetWebhookParams{
		URL: t.webhookConfig.URL,
	}); err != nil {
		return errors.Wrap(err, "set webhook")
	}

	srv := &http.Server{
		Addr:    ":" + t.webhookConfig.Port,
		Handler: t.bot.WebhookHandler(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.logger.Error().Err(err).Msg("webhook server error")
		}
	}()

	t.logger.Info().Str("port", t.webhookConfig.Port).Msg("running telegram bot with a webhook")
	t.bot.StartWebhook(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown webhook server")
}

func (t *TelegramTransport) dispatch(ctx context.Context, b *telegramBot.Bot, update *telegramBotModels.Update) {
	msg, ok := telegramMessage(b, update)
	if !ok || t.handler == nil {
		return
	}
	t.handler(ctx, msg)
}

// telegramMessage converts an update carrying a text message.
func telegramMessage(b *telegramBot.Bot, update *telegramBotModels.Update) (Message, bool) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return Message{}, false
	}
	m := update.Message

	msg := Message{Text: m.Text}
	if m.From != nil {
		msg.Author = m.From.Username
		msg.FromBot = m.From.IsBot
	}

	msg.reply = func(ctx context.Context, text string) error {
		_, err := b.SendMessage(ctx, &telegramBot.SendMessageParams{
			ChatID: m.Chat.ID,
			Text:   text,
			ReplyParameters: &telegramBotModels.ReplyParameters{
				MessageID: m.ID,
			},
		})
		return err
	}
	return msg, true
}
