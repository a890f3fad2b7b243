package anniversary

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Kind tells how a record is rendered in listings.
type Kind string

const (
	// KindPlain records show their title as is.
	KindPlain Kind = "plain"
	// KindRecurring records show an ordinal anniversary label ("3주년")
	// computed from the stored date instead of their title.
	KindRecurring Kind = "recurring"
)

// RecurringMarker in a title marks a record as recurring when the title is set.
const RecurringMarker = "N주년"

// legacyRecurringMarker classified records saved without a kind: any
// title containing it was shown as an ordinal anniversary.
const legacyRecurringMarker = "N"

// KindOf classifies a title.
func KindOf(title string) Kind {
	if strings.Contains(title, RecurringMarker) {
		return KindRecurring
	}
	return KindPlain
}

func legacyKindOf(title string) Kind {
	if strings.Contains(title, legacyRecurringMarker) {
		return KindRecurring
	}
	return KindPlain
}

// Record is a single stored anniversary.
type Record struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind,omitempty"`
}

// NewRecord builds a record with its kind derived from title.
func NewRecord(date, title string) Record {
	return Record{Date: date, Title: title, Kind: KindOf(title)}
}

// UnmarshalJSON fills in Kind for records stored before it existed, using
// the wider legacy marker those records were rendered with.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Record(p)
	if r.Kind == "" {
		r.Kind = legacyKindOf(r.Title)
	}
	return nil
}

// Label is the text shown for the record in a listing.
func (r Record) Label(now time.Time) string {
	if r.Kind == KindRecurring {
		return strconv.Itoa(YearsElapsed(r.Date, now)+1) + "주년"
	}
	return r.Title
}

// Entry is a record decorated for display.
type Entry struct {
	Record
	// Index is the record's position in storage order, starting at 0.
	Index int
	DDay  int
}
