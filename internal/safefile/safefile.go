// Package safefile provides hardened open helpers shared by the export
// reader and the rules-file loader.
package safefile

import (
	"errors"
	"os"
)

// ErrNotRegularFile is returned when a path does not name a regular file.
// This includes symlinks, FIFOs, devices, sockets, and directories.
var ErrNotRegularFile = errors.New("not a regular file")

// OpenRegular opens a file and verifies it is a regular file. Export and
// rules paths often come straight from CLI arguments, and reading a FIFO or
// device node would block or misbehave, so those are rejected up front.
//
// The path is Lstat-ed first (symlinks are not followed), then the opened
// descriptor is stat-ed again to catch the file being swapped in between.
//
// The caller must close the returned file when done.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}

	return f, info, nil
}
