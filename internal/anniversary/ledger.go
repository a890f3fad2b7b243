package anniversary

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingTitle  = errors.New("missing title")
	ErrNotFound      = errors.New("anniversary not found")
	ErrDuplicateDate = errors.New("anniversary already registered for date")
	ErrCorruptStore  = errors.New("corrupt anniversary store")
)

// Backend persists the whole record sequence as one unit.
type Backend interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Ledger is the single entry point to stored anniversaries. It keeps no
// copy of the records: every call reads the backend, and mutating calls
// rewrite it while holding the lock, so concurrent handlers cannot lose
// an update.
type Ledger struct {
	mu      sync.Mutex
	backend Backend
	now     func() time.Time
}

type LedgerOption func(*Ledger)

// WithClock overrides the time source; its location defines "today".
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

func NewLedger(backend Backend, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the ledger's current time.
func (l *Ledger) Now() time.Time {
	return l.now()
}

func (l *Ledger) load(ctx context.Context) ([]Record, error) {
	records, err := l.backend.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load anniversaries")
	}
	for i, r := range records {
		if !dateRe.MatchString(r.Date) {
			return nil, errors.Wrapf(ErrCorruptStore, "record %d has date %q", i, r.Date)
		}
	}
	return records, nil
}

func (l *Ledger) save(ctx context.Context, records []Record) error {
	return errors.Wrap(l.backend.Save(ctx, records), "save anniversaries")
}

// List returns every record with its D-day, in storage order.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	now := l.now()
	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		entries = append(entries, Entry{Record: r, Index: i, DDay: DaysUntilNext(r.Date, now)})
	}
	return entries, nil
}

// SortByDDay orders entries soonest first. Ties keep storage order.
func SortByDDay(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DDay < entries[j].DDay
	})
}

// Add appends a new record and returns it with its D-day.
func (l *Ledger) Add(ctx context.Context, title, date string) (Entry, error) {
	if title == "" {
		return Entry{}, ErrMissingTitle
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !IsValidDate(date, now) {
		return Entry{}, ErrInvalidDate
	}

	records, err := l.load(ctx)
	if err != nil {
		return Entry{}, err
	}
	if findFirst(records, date) >= 0 {
		return Entry{}, ErrDuplicateDate
	}

	r := NewRecord(date, title)
	records = append(records, r)
	if err := l.save(ctx, records); err != nil {
		return Entry{}, err
	}
	return Entry{Record: r, Index: len(records) - 1, DDay: DaysUntilNext(date, now)}, nil
}

// FindFirstByDate returns the first record stored with date.
func (l *Ledger) FindFirstByDate(ctx context.Context, date string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load(ctx)
	if err != nil {
		return Entry{}, err
	}
	i := findFirst(records, date)
	if i < 0 {
		return Entry{}, ErrNotFound
	}
	return Entry{Record: records[i], Index: i, DDay: DaysUntilNext(date, l.now())}, nil
}

// EditTitle replaces the title of the first record stored with date. An
// empty title leaves the record as it is.
func (l *Ledger) EditTitle(ctx context.Context, date, title string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !IsValidDate(date, now) {
		return Entry{}, ErrInvalidDate
	}

	records, err := l.load(ctx)
	if err != nil {
		return Entry{}, err
	}
	i := findFirst(records, date)
	if i < 0 {
		return Entry{}, ErrNotFound
	}

	if title != "" {
		records[i] = NewRecord(date, title)
	}
	if err := l.save(ctx, records); err != nil {
		return Entry{}, err
	}
	return Entry{Record: records[i], Index: i, DDay: DaysUntilNext(date, now)}, nil
}

// Remove deletes the first record stored with date and returns it.
func (l *Ledger) Remove(ctx context.Context, date string) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !IsValidDate(date, l.now()) {
		return Record{}, ErrInvalidDate
	}

	records, err := l.load(ctx)
	if err != nil {
		return Record{}, err
	}
	i := findFirst(records, date)
	if i < 0 {
		return Record{}, ErrNotFound
	}

	removed := records[i]
	records = append(records[:i], records[i+1:]...)
	if err := l.save(ctx, records); err != nil {
		return Record{}, err
	}
	return removed, nil
}

func findFirst(records []Record, date string) int {
	for i, r := range records {
		if r.Date == date {
			return i
		}
	}
	return -1
}
