//go:build !windows

package safefile

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestOpenRegular_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "export.csv")
	link := filepath.Join(dir, "link.csv")

	if err := os.WriteFile(target, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	_, _, err := OpenRegular(link)
	if err == nil {
		t.Error("OpenRegular() expected error for symlink")
	}
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
	}
}

func TestOpenRegular_RejectsFIFO(t *testing.T) {
	dir := t.TempDir()
	fifo := filepath.Join(dir, "fifo")

	if err := syscall.Mkfifo(fifo, 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := OpenRegular(fifo)
	if err == nil {
		t.Error("OpenRegular() expected error for FIFO")
	}
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
	}
}
