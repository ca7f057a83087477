package hobo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hobolog/hobo-go/pkg/hobo"
	"github.com/hobolog/hobo-go/pkg/hobo/labels"
)

func recvSample(t *testing.T, samples <-chan hobo.Sample) hobo.Sample {
	t.Helper()
	select {
	case s, ok := <-samples:
		require.True(t, ok, "sample channel closed unexpectedly")
		return s
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for sample")
	}
	return hobo.Sample{}
}

func recvError(t *testing.T, errs <-chan error) error {
	t.Helper()
	select {
	case err, ok := <-errs:
		require.True(t, ok, "error channel closed unexpectedly")
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for error")
	}
	return nil
}

func appendLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestFollower_DeliversExistingAndAppendedRows(t *testing.T) {
	path := writeExport(t,
		"Plot Title: live deployment",
		`"Date Time, GMT-08:00","Temp, °F"`,
		`03/15/16 02:30:00 PM,71.852`,
		`03/15/16 02:35:00 PM,`, // event row, skipped
		`03/15/16 02:40:00 PM,71.903`,
	)

	f, err := hobo.NewFollower(path, hobo.WithPolling(true))
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	samples, errs, err := f.Follow(ctx)
	require.NoError(t, err)

	s := recvSample(t, samples)
	assert.Equal(t, 71.852, s.Temperature)
	_, secs := s.Timestamp.Zone()
	assert.Equal(t, -8*3600, secs)

	s = recvSample(t, samples)
	assert.Equal(t, 71.903, s.Temperature)

	appendLine(t, path, `03/15/16 02:45:00 PM,71.950`)
	s = recvSample(t, samples)
	assert.Equal(t, 71.950, s.Temperature)

	select {
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	default:
	}
}

func TestFollower_BadRowGoesToErrorChannelAndStreamContinues(t *testing.T) {
	path := writeExport(t,
		"Plot Title: live deployment",
		`"Date Time, GMT-08:00","Temp, °F"`,
		`03/15/16 02:30:00 PM,seventy`,
		`03/15/16 02:40:00 PM,71.903`,
	)

	f, err := hobo.NewFollower(path, hobo.WithPolling(true))
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	samples, errs, err := f.Follow(ctx)
	require.NoError(t, err)

	gotErr := recvError(t, errs)
	var fe *hobo.FieldError
	require.True(t, errors.As(gotErr, &fe))
	assert.Equal(t, labels.RoleTemperature, fe.Role)

	s := recvSample(t, samples)
	assert.Equal(t, 71.903, s.Temperature)
}

func TestFollower_FollowTwice(t *testing.T) {
	path := writeExport(t,
		"Plot Title: live deployment",
		`"Date Time, GMT-08:00","Temp, °F"`,
	)

	f, err := hobo.NewFollower(path, hobo.WithPolling(true))
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, _, err = f.Follow(ctx)
	require.NoError(t, err)

	_, _, err = f.Follow(ctx)
	assert.True(t, errors.Is(err, hobo.ErrAlreadyFollowing))
}

func TestFollower_CloseThenFollow(t *testing.T) {
	path := writeExport(t,
		"Plot Title: live deployment",
		`"Date Time, GMT-08:00","Temp, °F"`,
	)

	f, err := hobo.NewFollower(path, hobo.WithPolling(true))
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close()) // idempotent

	_, _, err = f.Follow(context.Background())
	assert.True(t, errors.Is(err, hobo.ErrFollowerClosed))
}

func TestFollower_CloseStopsChannels(t *testing.T) {
	path := writeExport(t,
		"Plot Title: live deployment",
		`"Date Time, GMT-08:00","Temp, °F"`,
		`03/15/16 02:30:00 PM,71.852`,
	)

	f, err := hobo.NewFollower(path, hobo.WithPolling(true))
	require.NoError(t, err)

	samples, _, err := f.Follow(context.Background())
	require.NoError(t, err)

	recvSample(t, samples)
	require.NoError(t, f.Close())

	select {
	case _, ok := <-samples:
		assert.False(t, ok, "sample channel should be closed")
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestNewFollower_MissingFile(t *testing.T) {
	_, err := hobo.NewFollower(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
