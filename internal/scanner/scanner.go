// internal/scanner/scanner.go
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bstardust/photo-gps-report/internal/fileinfo"
	"github.com/bstardust/photo-gps-report/internal/logger"
)

// Scan walks fsys and returns the relative path of every JPEG under it,
// sorted lexicographically. Paths that differ only by letter case count as
// one file, so case-insensitive storage cannot produce duplicate rows; the
// first spelling seen in walk order survives.
func Scan(ctx context.Context, fsys fs.FS) ([]string, error) {
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if !fileinfo.IsJPEG(path) {
			return nil
		}

		key := strings.ToLower(path)
		if prev, ok := seen[key]; ok {
			logger.Debug("Skipping %s: same file as %s", path, prev)
			return nil
		}
		seen[key] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan photos directory: %w", err)
	}

	paths := make([]string, 0, len(seen))
	for _, p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths, nil
}
