package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// Page is one rendered document written to the build directory.
type Page struct {
	Name      string
	Component templ.Component
}

// PageName returns the file name for a layout: index.html for the default
// layout and <layout>.html for the rest.
func PageName(layout, defaultLayout string) string {
	if layout == defaultLayout {
		return "index.html"
	}
	return layout + ".html"
}

// Site writes pages into dir and copies assets under dir/static.
func Site(ctx context.Context, dir string, pages []Page, assets fs.FS) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	for _, p := range pages {
		if err := writePage(ctx, filepath.Join(dir, p.Name), p.Component); err != nil {
			return fmt.Errorf("failed to export %s: %w", p.Name, err)
		}
		slog.Debug("Exported page", slog.String("name", p.Name))
	}

	if assets == nil {
		return nil
	}
	if err := copyAssets(assets, filepath.Join(dir, "static")); err != nil {
		return fmt.Errorf("failed to copy assets: %w", err)
	}
	return nil
}

func writePage(ctx context.Context, path string, comp templ.Component) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := comp.Render(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func copyAssets(assets fs.FS, dst string) error {
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		src, err := assets.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	})
}
