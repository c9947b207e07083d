// internal/fileinfo/fileinfo_test.go
package fileinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJPEG(t *testing.T) {
	assert.True(t, IsJPEG("photo.jpg"))
	assert.True(t, IsJPEG("PHOTO.JPG"))
	assert.True(t, IsJPEG("trip/day1/photo.jpeg"))
	assert.True(t, IsJPEG("odd.JpEg"))

	assert.False(t, IsJPEG("thumb.png"))
	assert.False(t, IsJPEG("clip.mp4"))
	assert.False(t, IsJPEG("jpg"))
	assert.False(t, IsJPEG("archive.jpg.zip"))
	assert.False(t, IsJPEG(""))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "text/csv", DetectContentType("photos_metadata.csv"))
	assert.Equal(t, "text/csv", DetectContentType("REPORT.CSV"))
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		DetectContentType("photos_metadata.xlsx"))
	assert.Equal(t, "application/octet-stream", DetectContentType("report.bin"))
}
