package sample

import (
	"fmt"
	"strings"
	"time"
)

// Layouts are the accepted timestamp formats, tried in order; the first
// match wins. Export tools are not self-describing about which format they
// wrote, so a fixed priority order (most common first) is the discriminator.
//
//  1. 12-hour logger export:        "03/15/16 02:30:00 PM"
//  2. 24-hour second device family: "2019-07-04 14:05:09"
//  3. spreadsheet-edited export, seconds and AM/PM dropped: "3/15/2016 14:30"
//
// The numeric fields accept both padded and unpadded digits.
var Layouts = []string{
	"1/2/06 3:04:05 PM",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
}

// TimestampError reports a timestamp field that matched none of the
// accepted layouts. It carries the offending text and the layouts tried,
// for diagnostics.
type TimestampError struct {
	Text    string
	Layouts []string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("time data %q does not match formats: %s",
		e.Text, strings.Join(e.Layouts, ", "))
}

// ParseTimestamp parses a trimmed timestamp string against Layouts.
// With a non-nil tz the result is zone-aware at that fixed offset;
// otherwise it is parsed in the local location.
func ParseTimestamp(text string, tz *Offset) (time.Time, error) {
	loc := time.Local
	if tz != nil {
		loc = tz.Location()
	}
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &TimestampError{Text: text, Layouts: Layouts}
}
