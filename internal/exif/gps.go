// internal/exif/gps.go
package exif

import (
	"bytes"
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// gpsTagNames maps the standard GPS IFD tag ids to symbolic field names.
// Built once at startup; both lookup paths below translate through it.
var gpsTagNames = map[uint16]exif.FieldName{
	0x0000: exif.GPSVersionID,
	0x0001: exif.GPSLatitudeRef,
	0x0002: exif.GPSLatitude,
	0x0003: exif.GPSLongitudeRef,
	0x0004: exif.GPSLongitude,
	0x0005: exif.GPSAltitudeRef,
	0x0006: exif.GPSAltitude,
	0x0007: exif.GPSTimeStamp,
	0x0008: exif.GPSSatelites,
	0x0009: exif.GPSStatus,
	0x000a: exif.GPSMeasureMode,
	0x000b: exif.GPSDOP,
	0x000c: exif.GPSSpeedRef,
	0x000d: exif.GPSSpeed,
	0x000e: exif.GPSTrackRef,
	0x000f: exif.GPSTrack,
	0x0010: exif.GPSImgDirectionRef,
	0x0011: exif.GPSImgDirection,
	0x0012: exif.GPSMapDatum,
	0x0013: exif.GPSDestLatitudeRef,
	0x0014: exif.GPSDestLatitude,
	0x0015: exif.GPSDestLongitudeRef,
	0x0016: exif.GPSDestLongitude,
	0x0017: exif.GPSDestBearingRef,
	0x0018: exif.GPSDestBearing,
	0x0019: exif.GPSDestDistanceRef,
	0x001a: exif.GPSDestDistance,
	0x001b: exif.GPSProcessingMethod,
	0x001c: exif.GPSAreaInformation,
	0x001d: exif.GPSDateStamp,
	0x001e: exif.GPSDifferential,
	0x001f: exif.FieldName("GPSHPositioningError"),
}

// tagSet holds one image's GPS tags as plain Go values, keyed by symbolic
// name. It lives only long enough to assemble a GPSInfo.
type tagSet map[exif.FieldName]interface{}

// gpsTags locates the GPS block of x. The nested GPS sub-directory is
// authoritative; images whose writers flattened the GPS tags into the main
// directory are read by symbolic name instead.
func gpsTags(x *exif.Exif) tagSet {
	if ts := gpsSubDir(x); len(ts) > 0 {
		return ts
	}
	return gpsFlat(x)
}

// gpsSubDir re-decodes the GPS IFD from the raw TIFF block. Offsets inside
// x.Raw are absolute, so a fresh reader over the whole block resolves them.
func gpsSubDir(x *exif.Exif) tagSet {
	ptr, err := x.Get(exif.GPSInfoIFDPointer)
	if err != nil {
		return nil
	}
	offset, err := ptr.Int64(0)
	if err != nil {
		return nil
	}

	r := bytes.NewReader(x.Raw)
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil
	}
	dir, _, err := tiff.DecodeDir(r, x.Tiff.Order)
	if err != nil {
		return nil
	}

	ts := tagSet{}
	for _, tag := range dir.Tags {
		name, ok := gpsTagNames[tag.Id]
		if !ok {
			continue
		}
		if v := tagValue(tag); v != nil {
			ts[name] = v
		}
	}
	return ts
}

// gpsFlat reads GPS tags out of the merged field map.
func gpsFlat(x *exif.Exif) tagSet {
	ts := tagSet{}
	for _, name := range gpsTagNames {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		if v := tagValue(tag); v != nil {
			ts[name] = v
		}
	}
	return ts
}

// tagValue converts a decoded tag into plain Go values: string for ASCII,
// rational/int/float64 for a single numeric component, []interface{} for
// multi-component tags. Undecodable tags convert to nil.
func tagValue(t *tiff.Tag) interface{} {
	n := int(t.Count)
	switch t.Format() {
	case tiff.StringVal:
		s, err := t.StringVal()
		if err != nil {
			return nil
		}
		return strings.TrimSpace(s)
	case tiff.RatVal:
		vals := make([]interface{}, n)
		for i := range vals {
			num, den, err := t.Rat2(i)
			if err != nil {
				return nil
			}
			vals[i] = rational{num: num, den: den}
		}
		return scalarOrSlice(vals)
	case tiff.IntVal:
		vals := make([]interface{}, n)
		for i := range vals {
			v, err := t.Int(i)
			if err != nil {
				return nil
			}
			vals[i] = v
		}
		return scalarOrSlice(vals)
	case tiff.FloatVal:
		vals := make([]interface{}, n)
		for i := range vals {
			v, err := t.Float(i)
			if err != nil {
				return nil
			}
			vals[i] = v
		}
		return scalarOrSlice(vals)
	default:
		return nil
	}
}

func scalarOrSlice(vals []interface{}) interface{} {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals
}

// gpsInfo assembles signed decimal coordinates from the tag set. Each field
// is independent: a bad altitude never costs the latitude.
func (ts tagSet) gpsInfo() *GPSInfo {
	return &GPSInfo{
		Latitude:  dmsToDecimal(ts[exif.GPSLatitude], refString(ts[exif.GPSLatitudeRef])),
		Longitude: dmsToDecimal(ts[exif.GPSLongitude], refString(ts[exif.GPSLongitudeRef])),
		Altitude:  ts.altitude(),
	}
}

// dmsToDecimal converts a degrees/minutes/seconds triple into signed decimal
// degrees. Southern and western hemisphere references negate. Anything other
// than three coercible components yields no coordinate.
func dmsToDecimal(v interface{}, ref string) *float64 {
	parts, ok := v.([]interface{})
	if !ok || len(parts) != 3 {
		return nil
	}
	deg, ok := toFloat(parts[0])
	if !ok {
		return nil
	}
	min, ok := toFloat(parts[1])
	if !ok {
		return nil
	}
	sec, ok := toFloat(parts[2])
	if !ok {
		return nil
	}

	dec := deg + min/60.0 + sec/3600.0
	if ref == "S" || ref == "W" {
		dec = -dec
	}
	return &dec
}

// altitude applies the below-sea-level flag to the raw altitude value.
func (ts tagSet) altitude() *float64 {
	alt, ok := toFloat(ts[exif.GPSAltitude])
	if !ok {
		return nil
	}
	if ref, ok := toFloat(ts[exif.GPSAltitudeRef]); ok && ref == 1 {
		alt = -alt
	}
	return &alt
}

func refString(v interface{}) string {
	s, _ := v.(string)
	return s
}
