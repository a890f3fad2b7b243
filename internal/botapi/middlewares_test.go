package botapi

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestChain_Order(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, msg Message) {
				calls = append(calls, name)
				next(ctx, msg)
			}
		}
	}

	h := chain(func(context.Context, Message) { calls = append(calls, "handler") }, mw("outer"), mw("inner"))
	h(context.Background(), Message{})

	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestIgnoreBotsMiddleware(t *testing.T) {
	called := 0
	h := ignoreBotsMiddleware(func(context.Context, Message) { called++ })

	h(context.Background(), Message{Text: "!anniversary", FromBot: true})
	assert.Zero(t, called)

	h(context.Background(), Message{Text: "!anniversary"})
	assert.Equal(t, 1, called)
}

func TestRecoverMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := recoverMiddleware(&logger)(func(context.Context, Message) {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		h(context.Background(), Message{Text: "!anniversary"})
	})
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "message handler panicked")
}
