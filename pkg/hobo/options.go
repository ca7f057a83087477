package hobo

import (
	"io"
	"log/slog"

	"github.com/hobolog/hobo-go/pkg/hobo/labels"
	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

// Option configures Open and NewFollower using the functional options
// pattern.
type Option func(*config)

// config holds internal configuration shared by Reader and Follower.
type config struct {
	timezone *sample.Offset // target display zone, nil = keep source zone
	strict   bool
	rules    *labels.RuleSet
	logger   *slog.Logger
	poll     bool
}

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultConfig returns a config with sensible defaults.
func defaultConfig() *config {
	return &config{
		strict: true,
		rules:  labels.Default(),
		logger: discardLogger,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithTimezone sets a target display zone. Timestamps are converted to it
// after parsing; the conversion preserves the instant, only the displayed
// offset changes. Without this option timestamps stay in the zone the
// export declares (or local time when it declares none).
func WithTimezone(tz sample.Offset) Option {
	return func(c *config) {
		c.timezone = &tz
	}
}

// WithStrict controls CSV body parsing. Strict (the default) rejects
// malformed quoting in data rows; lenient tolerates it best-effort.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithRules replaces the built-in column-label rule set, e.g. one loaded
// from a YAML rules file to cover a new device family.
func WithRules(rs *labels.RuleSet) Option {
	return func(c *config) {
		if rs != nil {
			c.rules = rs
		}
	}
}

// WithLogger sets a logger for debug output. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolling makes the Follower poll the filesystem instead of using
// change notifications. Needed on filesystems without event support
// (network mounts). Open ignores this option.
func WithPolling(poll bool) Option {
	return func(c *config) {
		c.poll = poll
	}
}
