package botapi

import "context"

// Message is an inbound chat message as seen by the command handler.
type Message struct {
	Text    string
	Author  string
	FromBot bool

	reply func(ctx context.Context, text string) error
}

// Reply answers in the conversation the message came from.
func (m Message) Reply(ctx context.Context, text string) error {
	return m.reply(ctx, text)
}

type Handler func(ctx context.Context, msg Message)

// Transport is a messaging platform connection. OnMessage must be called
// before Login. Handlers may run concurrently.
type Transport interface {
	OnMessage(h Handler)
	Login(ctx context.Context, token string) error
	// Run blocks until ctx is done.
	Run(ctx context.Context) error
}
