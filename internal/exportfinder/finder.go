// Package exportfinder locates logger CSV exports on disk. Logger software
// is usually configured to drop every export into one directory, so the CLI
// accepts a directory and works on the newest export in it.
package exportfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvExportDir is the environment variable naming the export directory.
const EnvExportDir = "HOBOCSV_EXPORTDIR"

// Sentinel errors.
var (
	ErrExportDirNotFound = errors.New("export directory not found")
	ErrNoExports         = errors.New("no CSV exports found")
)

// FindExportDir returns the export directory to read from.
//
// Priority:
//  1. explicit (if non-empty)
//  2. HOBOCSV_EXPORTDIR environment variable
//
// Returns ErrExportDirNotFound if neither names a directory containing at
// least one CSV export. The returned path has symlinks resolved.
func FindExportDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or contains no CSV exports", ErrExportDirNotFound)
	}

	if envDir := os.Getenv(EnvExportDir); envDir != "" {
		if resolved := resolveAndValidateDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrExportDirNotFound, EnvExportDir)
	}

	return "", ErrExportDirNotFound
}

// candidate holds an export path and its cached modification time, so a
// file deleted between stat and sort cannot skew the ordering.
type candidate struct {
	path    string
	modTime int64
}

// FindLatestExport returns the most recently modified *.csv file in dir.
// Returns ErrNoExports if none exist.
func FindLatestExport(dir string) (string, error) {
	pattern := filepath.Join(dir, "*.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("globbing CSV exports: %w", err)
	}

	if len(matches) == 0 {
		return "", ErrNoExports
	}

	candidates := make([]candidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil {
			// Deleted or unreadable since the glob; skip.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, candidate{
			path:    m,
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", ErrNoExports
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})

	return candidates[0].path, nil
}

// resolveAndValidateDir resolves symlinks and checks the directory holds at
// least one CSV export. Returns the resolved path, or "" when invalid.
func resolveAndValidateDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return ""
	}

	pattern := filepath.Join(resolved, "*.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}

	return resolved
}
