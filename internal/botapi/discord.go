package botapi

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const discordIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// DiscordTransport delivers messages from the Discord gateway.
type DiscordTransport struct {
	session *discordgo.Session
	handler Handler
	logger  *zerolog.Logger
	ctx     context.Context
}

func NewDiscordTransport(logger *zerolog.Logger) *DiscordTransport {
	return &DiscordTransport{logger: logger, ctx: context.Background()}
}

func (d *DiscordTransport) OnMessage(h Handler) {
	d.handler = h
}

// Login opens the gateway connection. ctx is handed to message handlers.
func (d *DiscordTransport) Login(ctx context.Context, token string) error {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return errors.Wrap(err, "create discord session")
	}
	session.Identify.Intents = discordIntents

	d.ctx = ctx
	session.AddHandler(d.onReady)
	session.AddHandler(d.onMessageCreate)

	if err := session.Open(); err != nil {
		return errors.Wrap(err, "open discord gateway")
	}

	d.session = session
	return nil
}

func (d *DiscordTransport) Run(ctx context.Context) error {
	if d.session == nil {
		return errors.New("discord transport is not logged in")
	}

	d.logger.Info().Msg("running discord bot")
	<-ctx.Done()

	return errors.Wrap(d.session.Close(), "close discord session")
}

func (d *DiscordTransport) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	d.logger.Info().
		Str("user", r.User.String()).
		Strs("guilds", guildNames(r.Guilds)).
		Msg("logged in to discord")
}

// guildNames falls back to the guild ID while the guild is still
// unavailable and its name has not arrived yet.
func guildNames(guilds []*discordgo.Guild) []string {
	names := make([]string, 0, len(guilds))
	for _, g := range guilds {
		if g.Name != "" {
			names = append(names, g.Name)
		} else {
			names = append(names, g.ID)
		}
	}
	return names
}

func (d *DiscordTransport) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	msg, ok := discordMessage(s, m)
	if !ok || d.handler == nil {
		return
	}
	d.handler(d.ctx, msg)
}

func discordMessage(s *discordgo.Session, m *discordgo.MessageCreate) (Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return Message{}, false
	}

	msg := Message{
		Text:    m.Content,
		Author:  m.Author.Username,
		FromBot: m.Author.Bot,
	}
	msg.reply = func(ctx context.Context, text string) error {
		_, err := s.ChannelMessageSendReply(m.ChannelID, text, m.Reference(), discordgo.WithContext(ctx))
		return err
	}
	return msg, true
}
