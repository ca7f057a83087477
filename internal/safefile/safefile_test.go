package safefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRegular_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(path, []byte("Plot Title: test"), 0644); err != nil {
		t.Fatal(err)
	}

	f, info, err := OpenRegular(path)
	if err != nil {
		t.Fatalf("OpenRegular() error = %v, want nil", err)
	}
	defer f.Close()

	if !info.Mode().IsRegular() {
		t.Error("expected regular file")
	}

	buf := make([]byte, 16)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf[:n]) != "Plot Title: test" {
		t.Errorf("Read() = %q, want %q", string(buf[:n]), "Plot Title: test")
	}
}

func TestOpenRegular_FileNotExist(t *testing.T) {
	_, _, err := OpenRegular("/nonexistent/path/export.csv")
	if err == nil {
		t.Error("OpenRegular() expected error for nonexistent file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("OpenRegular() error = %v, want os.IsNotExist", err)
	}
}

func TestOpenRegular_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, _, err := OpenRegular(dir)
	if err == nil {
		t.Error("OpenRegular() expected error for directory")
	}
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
	}
}

func TestOpenRegular_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	f, info, err := OpenRegular(path)
	if err != nil {
		t.Fatalf("OpenRegular() error = %v, want nil", err)
	}
	defer f.Close()

	if info.Size() != 0 {
		t.Errorf("Size() = %d, want 0", info.Size())
	}
}
