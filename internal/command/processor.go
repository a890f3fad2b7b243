// Package command turns "!anniversary" chat commands into ledger calls
// and reply text.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/gehirndienst/anniversary-go-bot/internal/anniversary"
)

// Prefix is the first token of every command this package answers.
const Prefix = "!anniversary"

const (
	subAdd    = "add"
	subEdit   = "edit"
	subRemove = "remove"
	subHelp   = "help"
)

// Processor executes commands against a ledger.
type Processor struct {
	ledger *anniversary.Ledger
}

func NewProcessor(ledger *anniversary.Ledger) *Processor {
	return &Processor{ledger: ledger}
}

// Handle runs the command in text. ok is false when text is not a
// command, in which case nothing should be sent back. A non-nil error is
// a storage failure; validation problems are reported in the reply.
func (p *Processor) Handle(ctx context.Context, text string) (reply string, ok bool, err error) {
	args := strings.Fields(text)
	if len(args) == 0 || args[0] != Prefix {
		return "", false, nil
	}

	if len(args) == 1 {
		reply, err = p.list(ctx)
		return reply, true, err
	}

	switch args[1] {
	case subAdd:
		reply, err = p.add(ctx, args[2:])
	case subEdit:
		reply, err = p.edit(ctx, args[2:])
	case subRemove:
		reply, err = p.remove(ctx, args[2:])
	case subHelp:
		reply = msgHelp
	default:
		return "", false, nil
	}
	return reply, true, err
}

func (p *Processor) list(ctx context.Context) (string, error) {
	entries, err := p.sorted(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return msgEmpty, nil
	}
	return p.render(entries), nil
}

// add expects "<title...> <YYYYMMDD>": the last token is the date and
// everything before it is the title.
func (p *Processor) add(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return msgMissingTitle, nil
	}

	date := args[len(args)-1]
	title := unquote(strings.Join(args[:len(args)-1], " "))
	if len(args) == 1 {
		if anniversary.IsValidDate(date, p.ledger.Now()) {
			return msgMissingTitle, nil
		}
		return msgAddBadDate, nil
	}

	e, err := p.ledger.Add(ctx, title, date)
	switch {
	case errors.Is(err, anniversary.ErrMissingTitle):
		return msgMissingTitle, nil
	case errors.Is(err, anniversary.ErrInvalidDate):
		return msgAddBadDate, nil
	case errors.Is(err, anniversary.ErrDuplicateDate):
		return msgDuplicate, nil
	case err != nil:
		return "", err
	}
	return fmt.Sprintf(msgAdded, anniversary.FormatDate(e.Date), e.DDay), nil
}

// edit expects "<YYYYMMDD> [title...]"; with no arguments it shows the
// list to pick from.
func (p *Processor) edit(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return p.picker(ctx, msgEditPicker)
	}

	title := unquote(strings.Join(args[1:], " "))
	e, err := p.ledger.EditTitle(ctx, args[0], title)
	switch {
	case errors.Is(err, anniversary.ErrInvalidDate):
		return msgBadDate, nil
	case errors.Is(err, anniversary.ErrNotFound):
		return msgEditNotFound, nil
	case err != nil:
		return "", err
	}
	return fmt.Sprintf(msgEdited, e.Title, anniversary.FormatDate(e.Date), e.DDay), nil
}

func (p *Processor) remove(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return p.picker(ctx, msgRemovePicker)
	}

	_, err := p.ledger.Remove(ctx, args[0])
	switch {
	case errors.Is(err, anniversary.ErrInvalidDate):
		return msgBadDate, nil
	case errors.Is(err, anniversary.ErrNotFound):
		return msgRemoveNotFound, nil
	case err != nil:
		return "", err
	}
	return msgRemoved, nil
}

func (p *Processor) picker(ctx context.Context, format string) (string, error) {
	entries, err := p.sorted(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return msgEmpty, nil
	}
	return fmt.Sprintf(format, p.render(entries)), nil
}

func (p *Processor) sorted(ctx context.Context) ([]anniversary.Entry, error) {
	entries, err := p.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	anniversary.SortByDDay(entries)
	return entries, nil
}

// render numbers entries from 1 in the order given.
func (p *Processor) render(entries []anniversary.Entry) string {
	now := p.ledger.Now()
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s: D-%d (%s)", i+1, e.Label(now), e.DDay, anniversary.FormatDate(e.Date)))
	}
	return strings.Join(lines, "\n")
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
