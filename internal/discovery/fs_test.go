package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReportRelative(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "report.xml"), []byte("<testsuites/>"), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	got, err := Report(root, "report.xml")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !filepath.IsAbs(got) || filepath.Base(got) != "report.xml" {
		t.Fatalf("expected absolute report path, got %q", got)
	}
}

func TestReportMissing(t *testing.T) {
	root := t.TempDir()
	_, err := Report(root, "missing.xml")
	if err == nil {
		t.Fatalf("expected error for missing report")
	}
	if !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestReportDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "dir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := Report(root, "dir"); err == nil {
		t.Fatalf("expected error for directory")
	}
}

func TestDestinationCreatesDirectory(t *testing.T) {
	root := t.TempDir()
	file, dir, err := Destination(root, filepath.Join("out", "nested", "report.md"))
	if err != nil {
		t.Fatalf("Destination returned error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected destination directory %q to exist: %v", dir, err)
	}
	if filepath.Base(file) != "report.md" {
		t.Fatalf("unexpected file %q", file)
	}
}

func TestResources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.css", "a.js"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write file %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Resources(dir)
	if err != nil {
		t.Fatalf("Resources returned error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.css"),
		filepath.Join(dir, "img"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	missing, err := Resources(filepath.Join(dir, "nope"))
	if err != nil || missing != nil {
		t.Fatalf("expected no entries for missing dir, got %v, %v", missing, err)
	}
}
