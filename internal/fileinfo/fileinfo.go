// internal/fileinfo/fileinfo.go
package fileinfo

import (
	"path/filepath"
	"strings"
)

// jpegExtensions are the candidate photo extensions, matched case-insensitively.
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// IsJPEG reports whether path names a JPEG image by extension.
func IsJPEG(path string) bool {
	return jpegExtensions[strings.ToLower(filepath.Ext(path))]
}

// DetectContentType returns the MIME type of a report file for upload.
func DetectContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
