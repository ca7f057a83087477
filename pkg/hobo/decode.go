package hobo

import (
	"strconv"
	"strings"

	"github.com/hobolog/hobo-go/pkg/hobo/labels"
	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

// fieldAt returns the field at index i, or "" when the index is unresolved
// or the row is shorter than the header.
func fieldAt(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// decodeRow turns one tokenized record into a Sample.
//
// Return values:
//   - (*Sample, true, nil): decoded sample
//   - (nil, false, nil): not a sample row, silently skipped
//   - (nil, false, error): malformed row
//
// Two skip conditions, the only locally absorbed cases in the package:
// an empty temperature field marks an event-only row, and an empty leading
// field marks a blank separator row.
func decodeRow(rec []string, cols labels.Columns, tz, target *sample.Offset) (*sample.Sample, bool, error) {
	if strings.TrimSpace(fieldAt(rec, cols.Temperature)) == "" {
		return nil, false, nil
	}
	if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
		return nil, false, nil
	}

	ts, err := sample.ParseTimestamp(strings.TrimSpace(fieldAt(rec, cols.Timestamp)), tz)
	if err != nil {
		return nil, false, err
	}
	if target != nil {
		ts = ts.In(target.Location())
	}

	temp, err := parseField(labels.RoleTemperature, fieldAt(rec, cols.Temperature))
	if err != nil {
		return nil, false, err
	}

	s := &sample.Sample{Timestamp: ts, Temperature: temp}

	if cols.Resolved(labels.RoleHumidity) {
		if text := fieldAt(rec, cols.Humidity); strings.TrimSpace(text) != "" {
			rh, err := parseField(labels.RoleHumidity, text)
			if err != nil {
				return nil, false, err
			}
			s.Humidity = &rh
		}
	}

	if cols.Resolved(labels.RoleBattery) {
		// Unlike humidity, battery is parsed unconditionally once its column
		// resolved: an empty cell is malformed input. Preserved source
		// behavior.
		batt, err := parseField(labels.RoleBattery, fieldAt(rec, cols.Battery))
		if err != nil {
			return nil, false, err
		}
		s.Battery = &batt
	}

	return s, true, nil
}

func parseField(role labels.Role, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &FieldError{Role: role, Text: text, Cause: err}
	}
	return v, nil
}
