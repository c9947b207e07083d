// internal/exif/exif.go
package exif

import (
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Data represents the EXIF metadata the report cares about
type Data struct {
	GPS   *GPSInfo
	Make  string
	Model string
}

// GPSInfo represents GPS information from EXIF. A nil field means the value
// could not be decoded; zero is a valid position, not an absence.
type GPSInfo struct {
	Latitude  *float64
	Longitude *float64
	Altitude  *float64
}

// Extract extracts EXIF metadata from a reader
func Extract(r io.Reader) (*Data, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return nil, err
	}

	data := &Data{}

	// Camera identification
	if tag, err := x.Get(exif.Make); err == nil {
		if s, err := tag.StringVal(); err == nil {
			data.Make = strings.TrimSpace(s)
		}
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if s, err := tag.StringVal(); err == nil {
			data.Model = strings.TrimSpace(s)
		}
	}

	// GPS block, if the image carries one
	if ts := gpsTags(x); len(ts) > 0 {
		data.GPS = ts.gpsInfo()
	}

	return data, nil
}
