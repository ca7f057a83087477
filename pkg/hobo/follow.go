package hobo

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hobolog/hobo-go/internal/safefile"
	"github.com/hobolog/hobo-go/internal/tailer"
)

// followerErrBuffer is the buffer size for the error channel. A small
// buffer prevents error loss while the consumer is busy with a sample.
const followerErrBuffer = 16

// Follower tails a logger export that is still being appended to, scanning
// the preamble the same way Open does and then decoding each appended data
// row as it arrives.
//
// Unlike the Reader's fail-fast contract, per-row decode errors go to the
// error channel and following continues: a live stream has to survive one
// bad row. A malformed timezone annotation in the preamble is still fatal.
type Follower struct {
	path string
	cfg  *config
	log  *slog.Logger

	mu        sync.Mutex
	closed    bool
	following bool
	cancel    context.CancelFunc
	doneCh    chan struct{}
}

// NewFollower validates the export path and returns a Follower.
// The file must already exist; its preamble may still be incomplete.
func NewFollower(path string, opts ...Option) (*Follower, error) {
	cfg := applyOptions(opts)

	f, _, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	f.Close()

	return &Follower{
		path: path,
		cfg:  cfg,
		log:  cfg.logger,
	}, nil
}

// Follow starts tailing and returns the sample and error channels. Both
// channels close when ctx is cancelled, Close is called, or the tail ends
// fatally. Follow can only be called once per Follower.
//
// Returns ErrFollowerClosed after Close and ErrAlreadyFollowing on a
// second call.
func (f *Follower) Follow(ctx context.Context) (<-chan Sample, <-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, nil, ErrFollowerClosed
	}
	if f.following {
		return nil, nil, ErrAlreadyFollowing
	}
	f.following = true

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.doneCh = make(chan struct{})

	sampleCh := make(chan Sample)
	errCh := make(chan error, followerErrBuffer)

	go f.run(ctx, sampleCh, errCh)

	return sampleCh, errCh, nil
}

// Close stops the follower and releases resources. Safe to call multiple
// times. Blocks until the internal goroutine has exited.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
	doneCh := f.doneCh
	f.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (f *Follower) run(ctx context.Context, sampleCh chan<- Sample, errCh chan<- error) {
	defer close(f.doneCh)
	defer close(sampleCh)
	defer close(errCh)

	tcfg := tailer.DefaultConfig()
	tcfg.Poll = f.cfg.poll
	t, err := tailer.New(ctx, f.path, tcfg)
	if err != nil {
		sendError(ctx, errCh, fmt.Errorf("failed to tail export: %w", err))
		return
	}
	defer func() { _ = t.Stop() }()
	f.log.Debug("started tailing export", "path", f.path)

	sc := newHeaderScanner(f.cfg.rules)
	scanning := true

	for line := range t.Lines() {
		if line.Err != nil {
			sendError(ctx, errCh, fmt.Errorf("tail failed: %w", line.Err))
			return
		}

		if scanning {
			found, err := sc.observe(line.Text)
			if err != nil {
				sendError(ctx, errCh, err)
				return
			}
			if found {
				scanning = false
				f.log.Debug("header resolved",
					"path", f.path,
					"title", sc.meta.Title,
					"serial", sc.meta.SerialNumber)
			}
			continue
		}

		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		rec, err := splitRecord(line.Text, f.cfg.strict)
		if err != nil {
			sendError(ctx, errCh, err)
			continue
		}
		s, ok, err := decodeRow(rec, sc.cols, sc.meta.Timezone, f.cfg.timezone)
		if err != nil {
			sendError(ctx, errCh, err)
			continue
		}
		if !ok {
			continue
		}

		select {
		case sampleCh <- *s:
		case <-ctx.Done():
			return
		}
	}
}

// splitRecord tokenizes a single data row. Quoted fields spanning lines
// are not supported while following; logger data rows never contain them.
func splitRecord(line string, strict bool) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = !strict
	rec, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize data row: %w", err)
	}
	return rec, nil
}

// sendError delivers err unless the context is already cancelled.
func sendError(ctx context.Context, errCh chan<- error, err error) {
	select {
	case errCh <- err:
	case <-ctx.Done():
	}
}
