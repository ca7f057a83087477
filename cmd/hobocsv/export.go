package main

import (
	"log/slog"
	"os"

	"github.com/hobolog/hobo-go/internal/exportfinder"
	"github.com/hobolog/hobo-go/pkg/hobo"
	"github.com/hobolog/hobo-go/pkg/hobo/labels"
	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

// resolveExportPath turns a CLI argument into a concrete export file.
// An empty argument or a directory is resolved through exportfinder to
// the newest *.csv export.
func resolveExportPath(arg string) (string, error) {
	if arg == "" {
		dir, err := exportfinder.FindExportDir("")
		if err != nil {
			return "", err
		}
		return exportfinder.FindLatestExport(dir)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		dir, err := exportfinder.FindExportDir(arg)
		if err != nil {
			return "", err
		}
		return exportfinder.FindLatestExport(dir)
	}
	return arg, nil
}

// buildOptions maps the persistent flags onto library options.
func buildOptions() ([]hobo.Option, error) {
	var opts []hobo.Option

	if timezoneText != "" {
		tz, err := sample.Parse(timezoneText)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hobo.WithTimezone(tz))
	}
	if lenient {
		opts = append(opts, hobo.WithStrict(false))
	}
	if rulesFile != "" {
		rs, err := labels.Load(rulesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hobo.WithRules(rs))
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, hobo.WithLogger(logger))
	}

	return opts, nil
}
