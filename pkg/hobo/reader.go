package hobo

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/hobolog/hobo-go/internal/safefile"
	"github.com/hobolog/hobo-go/pkg/hobo/labels"
	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

// Sample is re-exported for convenience.
type Sample = sample.Sample

// Metadata describes the export being read. It is collected from the
// preamble and frozen once the header row is found. Timezone is nil when
// the export carries no GMT annotation.
type Metadata struct {
	Title        string
	SerialNumber string
	Timezone     *sample.Offset
}

// Reader is a single-pass session over one logger CSV export. It scans the
// preamble once at Open, then yields decoded samples pull-by-pull: each
// Next call parses exactly one more underlying record.
//
// A Reader owns its file exclusively and is not safe for concurrent use.
type Reader struct {
	path   string
	f      *os.File
	cr     *csv.Reader
	meta   Metadata
	cols   labels.Columns
	target *sample.Offset
	log    *slog.Logger
	closed bool
}

// Open opens a logger CSV export and drives the header scan to completion.
// The file is closed on every failure path.
//
// Failures: wrapped I/O errors, *sample.FormatError for a malformed
// timezone annotation, and *MissingColumnError when the input ends before
// both the timestamp and temperature columns resolve.
func Open(path string, opts ...Option) (*Reader, error) {
	cfg := applyOptions(opts)

	f, _, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}

	br := bufio.NewReader(f)
	sc := newHeaderScanner(cfg.rules)
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			found, serr := sc.observe(line)
			if serr != nil {
				f.Close()
				return nil, serr
			}
			if found {
				break
			}
		}
		if rerr == io.EOF {
			f.Close()
			return nil, sc.exhausted()
		}
		if rerr != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read preamble: %w", rerr)
		}
	}

	cfg.logger.Debug("header resolved",
		"path", path,
		"title", sc.meta.Title,
		"serial", sc.meta.SerialNumber,
		"columns", sc.cols)

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = !cfg.strict

	return &Reader{
		path:   path,
		f:      f,
		cr:     cr,
		meta:   sc.meta,
		cols:   sc.cols,
		target: cfg.timezone,
		log:    cfg.logger,
	}, nil
}

// Path returns the path the Reader was opened with.
func (r *Reader) Path() string { return r.path }

// Metadata returns the preamble metadata.
func (r *Reader) Metadata() Metadata { return r.meta }

// Columns returns the resolved column indices.
func (r *Reader) Columns() labels.Columns { return r.cols }

// Next returns the next sample, advancing past event and blank separator
// rows. It returns io.EOF at end of input and ErrReaderClosed after Close.
func (r *Reader) Next() (*Sample, error) {
	if r.closed {
		return nil, ErrReaderClosed
	}
	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		s, ok, err := decodeRow(rec, r.cols, r.meta.Timezone, r.target)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.log.Debug("skipping non-sample row", "path", r.path)
			continue
		}
		return s, nil
	}
}

// Samples returns a lazy, single-pass, forward-only sequence of samples.
// Iteration stops at end of input or after the first error; the sequence
// is not restartable once exhausted.
//
//	for s, err := range r.Samples() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(s.Timestamp, s.Temperature)
//	}
func (r *Reader) Samples() iter.Seq2[*Sample, error] {
	return func(yield func(*Sample, error) bool) {
		for {
			s, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}

// ReadAll drains the remaining samples into a slice.
func (r *Reader) ReadAll() ([]Sample, error) {
	var out []Sample
	for s, err := range r.Samples() {
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// Series holds the export as four parallel, ordered slices instead of a
// sequence of tuples. Humidities and Batteries entries are nil where the
// field was absent.
type Series struct {
	Timestamps   []time.Time
	Temperatures []float64
	Humidities   []*float64
	Batteries    []*float64
}

// Unzip fully drains the Reader and returns the samples as parallel
// slices. Purely a consumption-shape convenience over Samples.
func (r *Reader) Unzip() (*Series, error) {
	var out Series
	for s, err := range r.Samples() {
		if err != nil {
			return nil, err
		}
		out.Timestamps = append(out.Timestamps, s.Timestamp)
		out.Temperatures = append(out.Temperatures, s.Temperature)
		out.Humidities = append(out.Humidities, s.Humidity)
		out.Batteries = append(out.Batteries, s.Battery)
	}
	return &out, nil
}

// Close releases the underlying file. Safe to call multiple times; the
// resource is released exactly once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.f.Close()
}
