package botapi

import (
	"context"
	"strings"

	"github.com/gehirndienst/anniversary-go-bot/internal/command"
)

const msgFailure = "앗, 기념일 저장소에 문제가 생겼어. 잠시 후에 다시 해줘!"

// commandHandlerClosure answers "!anniversary" commands. Storage errors are
// logged and answered with a generic failure message.
func commandHandlerClosure(b *Bot) Handler {
	return func(ctx context.Context, msg Message) {
		if isStartCommand(msg.Text) {
			if err := msg.Reply(ctx, helpText()); err != nil {
				b.logger.Error().Err(err).Msg("failed to send reply")
			}
			return
		}

		reply, ok, err := b.processor.Handle(ctx, msg.Text)
		if !ok {
			return
		}

		if err != nil {
			b.logger.Error().Err(err).Str("text", msg.Text).Msg("failed to process command")
			reply = msgFailure
		} else {
			b.logger.Info().Str("author", msg.Author).Str("text", msg.Text).Msg("command processed")
		}

		if err := msg.Reply(ctx, reply); err != nil {
			b.logger.Error().Err(err).Msg("failed to send reply")
		}
	}
}

// isStartCommand matches the slash commands telegram clients send on their
// own when a chat with the bot is opened.
func isStartCommand(text string) bool {
	switch strings.TrimSpace(text) {
	case "/start", "/help":
		return true
	}
	return false
}

func helpText() string {
	return "기념일 커맨드는 `" + command.Prefix + " help` 로 확인할 수 있어!"
}
