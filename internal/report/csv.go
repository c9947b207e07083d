// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bstardust/photo-gps-report/pkg/models"
)

const utf8BOM = "\uFEFF"

// WriteCSV writes the header and one row per record. The stream opens with
// a UTF-8 byte-order mark so spreadsheet imports detect the encoding.
func WriteCSV(w io.Writer, records []*models.Record) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte-order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
