// Package tailer wraps github.com/nxadm/tail behind the small surface the
// follower needs: a context-aware line channel over a growing file.
package tailer

import (
	"context"
	"io"

	"github.com/nxadm/tail"
)

// Config controls how a file is tailed.
type Config struct {
	// FromStart reads the whole file before waiting for appended lines.
	// When false, tailing starts at the current end of file.
	FromStart bool

	// Poll uses filesystem polling instead of inotify. Slower, but works
	// on filesystems without event support (network mounts).
	Poll bool
}

// DefaultConfig returns the config used by the follower: read from the
// start (the header must be scanned) with event-based watching.
func DefaultConfig() Config {
	return Config{FromStart: true}
}

// Line is one tailed line. Err is set when the underlying tail failed;
// the channel closes afterwards.
type Line struct {
	Text string
	Err  error
}

// Tailer follows a single file.
type Tailer struct {
	t     *tail.Tail
	lines chan Line
}

// New starts tailing path. The returned Tailer's channel closes when ctx
// is cancelled, Stop is called, or the underlying tail ends.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	loc := &tail.SeekInfo{Whence: io.SeekEnd}
	if cfg.FromStart {
		loc = &tail.SeekInfo{Whence: io.SeekStart}
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      cfg.Poll,
		Location:  loc,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, err
	}

	tr := &Tailer{
		t:     t,
		lines: make(chan Line),
	}
	go tr.forward(ctx)
	return tr, nil
}

// Lines returns the tailed line channel.
func (tr *Tailer) Lines() <-chan Line { return tr.lines }

// Stop ends tailing and releases the watcher resources.
func (tr *Tailer) Stop() error {
	err := tr.t.Stop()
	tr.t.Cleanup()
	return err
}

func (tr *Tailer) forward(ctx context.Context) {
	defer close(tr.lines)
	for {
		select {
		case <-ctx.Done():
			return
		case l, ok := <-tr.t.Lines:
			if !ok {
				return
			}
			out := Line{Text: l.Text, Err: l.Err}
			select {
			case tr.lines <- out:
			case <-ctx.Done():
				return
			}
			if out.Err != nil {
				return
			}
		}
	}
}
