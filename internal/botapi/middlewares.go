package botapi

import (
	"context"

	"github.com/rs/zerolog"
)

type Middleware func(next Handler) Handler

func chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ignoreBotsMiddleware drops messages written by bots, including our own
// replies.
func ignoreBotsMiddleware(next Handler) Handler {
	return func(ctx context.Context, msg Message) {
		if msg.FromBot {
			return
		}
		next(ctx, msg)
	}
}

func recoverMiddleware(logger *zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, msg Message) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Interface("panic", r).
						Str("text", msg.Text).
						Msg("message handler panicked")
				}
			}()
			next(ctx, msg)
		}
	}
}

func loggingMiddleware(logger *zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, msg Message) {
			logger.Debug().
				Str("author", msg.Author).
				Str("text", msg.Text).
				Msg("received message")
			next(ctx, msg)
		}
	}
}
