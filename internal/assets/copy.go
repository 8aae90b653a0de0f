package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
)

// Copy places each resource path into dst. Files overwrite existing files;
// directories replace any existing directory of the same name.
func Copy(ctx context.Context, resources []string, dst string) error {
	log := clog.FromContext(ctx)
	for _, src := range resources {
		info, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("stat resource %q: %w", src, err)
		}
		target := filepath.Join(dst, filepath.Base(src))
		log.Debug("copying resource", "source", src, "target", target)

		if !info.IsDir() {
			if err := copyFile(src, target, info.Mode().Perm()); err != nil {
				return err
			}
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("remove %q: %w", target, err)
		}
		if err := os.CopyFS(target, os.DirFS(src)); err != nil {
			return fmt.Errorf("copy directory %q: %w", src, err)
		}
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open resource %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create %q: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %q: %w", src, err)
	}
	return out.Close()
}
