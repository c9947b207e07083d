// internal/metadata/metadata.go
package metadata

import (
	"io/fs"
	"strings"

	"github.com/bstardust/photo-gps-report/internal/exif"
	"github.com/bstardust/photo-gps-report/internal/logger"
	"github.com/bstardust/photo-gps-report/pkg/models"
)

// Extractor produces one report record per image file
type Extractor struct{}

// NewExtractor creates a new metadata extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromFile builds the record for a single file. It never fails
// outward: unreadable files and missing or corrupt EXIF degrade to a record
// carrying only the path, so one bad image cannot abort a batch.
func (e *Extractor) ExtractFromFile(fsys fs.FS, path string) *models.Record {
	record := models.NewRecord(path)

	file, err := fsys.Open(path)
	if err != nil {
		logger.Debug("Cannot open %s: %v", path, err)
		return record // Return what we have so far
	}
	defer file.Close()

	data, err := exif.Extract(file)
	if err != nil {
		logger.Debug("No usable EXIF in %s: %v", path, err)
		return record // Return what we have so far
	}

	if data.GPS != nil {
		record.Latitude = data.GPS.Latitude
		record.Longitude = data.GPS.Longitude
		record.Altitude = data.GPS.Altitude
	}
	record.Camera = cameraString(data.Make, data.Model)

	return record
}

// cameraString joins make and model into the combined report field. An empty
// half drops out; nil means neither was present.
func cameraString(make, model string) *string {
	joined := strings.TrimSpace(make + " " + model)
	if joined == "" {
		return nil
	}
	return &joined
}
