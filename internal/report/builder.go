// internal/report/builder.go
package report

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bstardust/photo-gps-report/internal/metadata"
	"github.com/bstardust/photo-gps-report/internal/progress"
	"github.com/bstardust/photo-gps-report/internal/scanner"
	"github.com/bstardust/photo-gps-report/pkg/models"
)

// Builder runs the scan and assembles the report rows
type Builder struct {
	fsys      fs.FS
	root      string
	extractor *metadata.Extractor
	progress  *progress.Reporter
}

// NewBuilder creates a builder over an opened photos directory. root is the
// directory path as the user gave it; it prefixes every row's photo path.
func NewBuilder(fsys fs.FS, root string) *Builder {
	return &Builder{
		fsys:      fsys,
		root:      root,
		extractor: metadata.NewExtractor(),
		progress:  progress.New(),
	}
}

// Run discovers the photos and extracts one record per file, in
// deterministic path order. Files are processed one at a time; a photo that
// cannot be read still yields its row.
func (b *Builder) Run(ctx context.Context) ([]*models.Record, error) {
	paths, err := scanner.Scan(ctx, b.fsys)
	if err != nil {
		return nil, err
	}

	b.progress.Start(len(paths))
	records := make([]*models.Record, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record := b.extractor.ExtractFromFile(b.fsys, path)
		record.Path = filepath.Join(b.root, filepath.FromSlash(path))
		records = append(records, record)

		if record.Latitude != nil && record.Longitude != nil {
			b.progress.Located(path)
		} else {
			b.progress.Missing(path)
		}
	}
	b.progress.Finish()

	return records, nil
}
