package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrReportNotFound indicates that the report file does not exist.
var ErrReportNotFound = errors.New("report file not found")

// Report resolves the report path against root and checks that it names a
// regular file. The returned path is absolute with symlinks resolved.
func Report(root, path string) (string, error) {
	full := absolute(root, path)
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("the report file %s does not exist: %w", full, ErrReportNotFound)
		}
		return "", fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("report %q is a directory", path)
	}
	return realPath(full), nil
}

// Destination resolves the output path against root and creates its parent
// directory when missing. It returns the absolute output path and directory.
func Destination(root, path string) (file, dir string, err error) {
	file = absolute(root, path)
	dir = filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create destination directory %q: %w", dir, err)
	}
	return realPath(file), dir, nil
}

// Resources lists the entries of dir sorted by name. A missing directory
// yields no entries.
func Resources(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read resources %q: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func absolute(root, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return filepath.Clean(path)
}

func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
