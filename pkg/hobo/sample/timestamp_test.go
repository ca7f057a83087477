package sample_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "12-hour logger export",
			input: "03/15/16 02:30:00 PM",
			want:  time.Date(2016, 3, 15, 14, 30, 0, 0, time.Local),
		},
		{
			name:  "24-hour second device family",
			input: "2019-07-04 14:05:09",
			want:  time.Date(2019, 7, 4, 14, 5, 9, 0, time.Local),
		},
		{
			name:  "spreadsheet-edited export",
			input: "3/15/2016 14:30",
			want:  time.Date(2016, 3, 15, 14, 30, 0, 0, time.Local),
		},
		{
			name:  "12-hour export without zero padding",
			input: "3/5/16 9:05:00 AM",
			want:  time.Date(2016, 3, 5, 9, 5, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sample.ParseTimestamp(tt.input, nil)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseTimestamp_WithOffset(t *testing.T) {
	tz, err := sample.New(-8)
	require.NoError(t, err)

	got, err := sample.ParseTimestamp("03/15/16 02:30:00 PM", &tz)
	require.NoError(t, err)

	_, secs := got.Zone()
	assert.Equal(t, -8*3600, secs)
	assert.Equal(t, 14, got.Hour())

	// Instant-preserving conversion to another fixed offset.
	est, err := sample.New(-5)
	require.NoError(t, err)
	moved := got.In(est.Location())
	assert.True(t, moved.Equal(got))
	assert.Equal(t, 17, moved.Hour())
}

func TestParseTimestamp_Unrecognized(t *testing.T) {
	_, err := sample.ParseTimestamp("not-a-date", nil)
	require.Error(t, err)

	var te *sample.TimestampError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "not-a-date", te.Text)
	assert.Equal(t, sample.Layouts, te.Layouts)
	assert.Contains(t, err.Error(), "not-a-date")
}
