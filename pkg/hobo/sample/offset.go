package sample

import (
	"fmt"
	"strconv"
	"time"
)

// offsetTextLen is the exact length of the logger's timezone notation,
// e.g. "GMT-08:00".
const offsetTextLen = 9

// Offset is a fixed-offset timezone as written by logger export tools:
// "GMT" + signed two-digit hour + ":00". The format encodes whole hours
// only; there is no daylight-saving component.
//
// Offset is a comparable value type; two offsets are equal when their
// hour counts are equal.
type Offset struct {
	hours int
}

// FormatError reports timezone text that does not match the GMT±HH:00
// notation.
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timezone offset %q (want GMT±HH:00)", e.Text)
}

// New returns the Offset for a whole-hour UTC offset.
// Hours must be in [-23, 23].
func New(hours int) (Offset, error) {
	if hours < -23 || hours > 23 {
		return Offset{}, fmt.Errorf("offset hours out of range [-23, 23]: %d", hours)
	}
	return Offset{hours: hours}, nil
}

// Parse parses the canonical 9-character notation, e.g. "GMT-08:00".
// Anything else, including a non-zero minutes field, returns *FormatError.
func Parse(text string) (Offset, error) {
	if len(text) != offsetTextLen || text[:3] != "GMT" || text[6:] != ":00" {
		return Offset{}, &FormatError{Text: text}
	}
	if text[3] != '+' && text[3] != '-' {
		return Offset{}, &FormatError{Text: text}
	}
	hours, err := strconv.Atoi(text[3:6])
	if err != nil {
		return Offset{}, &FormatError{Text: text}
	}
	o, err := New(hours)
	if err != nil {
		return Offset{}, &FormatError{Text: text}
	}
	return o, nil
}

// Hours returns the offset in whole hours.
func (o Offset) Hours() int { return o.hours }

// String renders the canonical notation the loggers use, zero-padded and
// always signed: "GMT-08:00", "GMT+05:00".
func (o Offset) String() string {
	return fmt.Sprintf("GMT%+03d:00", o.hours)
}

// UTCOffset returns the offset as a duration.
func (o Offset) UTCOffset() time.Duration {
	return time.Duration(o.hours) * time.Hour
}

// Location returns a fixed *time.Location named with the canonical
// notation, suitable for time.ParseInLocation and time.Time.In.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.String(), o.hours*3600)
}
