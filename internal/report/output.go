// internal/report/output.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bstardust/photo-gps-report/internal/logger"
	"github.com/bstardust/photo-gps-report/pkg/common"
	"github.com/bstardust/photo-gps-report/pkg/models"
)

// Format selects the report encoding
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

func (f Format) String() string {
	if f == FormatXLSX {
		return "XLSX"
	}
	return "CSV"
}

// ResolveOutputPath maps the requested output path to a concrete path and
// format. Extensions match case-insensitively; an unknown or missing
// extension falls back to CSV and the path is corrected to say so.
func ResolveOutputPath(path string) (string, Format) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".csv":
		return path, FormatCSV
	case ".xlsx":
		return path, FormatXLSX
	default:
		corrected := strings.TrimSuffix(path, ext) + ".csv"
		logger.Warn("Unrecognized output extension %q, writing CSV to %s", ext, corrected)
		return corrected, FormatCSV
	}
}

// Write serializes the records to path in the given format and logs where
// the report landed.
func Write(path string, format Format, records []*models.Record) error {
	switch format {
	case FormatXLSX:
		if err := WriteXLSX(path, records); err != nil {
			return err
		}
	default:
		f, err := os.Create(path)
		if err != nil {
			return common.NewInputError("cannot write report file %s: %v", path, err)
		}
		if err := WriteCSV(f, records); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close report file: %w", err)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	logger.Info("Saved %s report: %s", format, abs)
	return nil
}
