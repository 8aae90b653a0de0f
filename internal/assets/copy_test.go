package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %q: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %q: %v", path, err)
	}
	return string(data)
}

func TestCopyOverwritesFilesAndReplacesDirectories(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	write(t, filepath.Join(src, "style.css"), "new css")
	write(t, filepath.Join(src, "img", "logo.svg"), "<svg/>")
	write(t, filepath.Join(dst, "style.css"), "old css")
	write(t, filepath.Join(dst, "img", "stale.png"), "stale")

	resources := []string{filepath.Join(src, "img"), filepath.Join(src, "style.css")}
	if err := Copy(context.Background(), resources, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	if got := read(t, filepath.Join(dst, "style.css")); got != "new css" {
		t.Fatalf("expected file overwritten, got %q", got)
	}
	if got := read(t, filepath.Join(dst, "img", "logo.svg")); got != "<svg/>" {
		t.Fatalf("expected directory copied, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(dst, "img", "stale.png")); !os.IsNotExist(err) {
		t.Fatalf("expected stale file removed with replaced directory, got %v", err)
	}
}

func TestCopyMissingResource(t *testing.T) {
	if err := Copy(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, t.TempDir()); err == nil {
		t.Fatalf("expected error for missing resource")
	}
}
