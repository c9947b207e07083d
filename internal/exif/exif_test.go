// internal/exif/exif_test.go
package exif

import (
	"bytes"
	"testing"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bstardust/photo-gps-report/internal/exif/exiftest"
)

func TestToFloat(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{name: "float passes through", in: 12.25, want: 12.25, ok: true},
		{name: "int", in: 7, want: 7, ok: true},
		{name: "int64", in: int64(-3), want: -3, ok: true},
		{name: "rational", in: rational{num: 1234, den: 10}, want: 123.4, ok: true},
		{name: "negative rational", in: rational{num: -5, den: 2}, want: -2.5, ok: true},
		{name: "zero denominator", in: rational{num: 40, den: 0}},
		{name: "numeric string is not a number", in: "12"},
		{name: "nil"},
		{name: "slice", in: []interface{}{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toFloat(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestDMSToDecimal(t *testing.T) {
	triple := func(d, m, s interface{}) []interface{} {
		return []interface{}{d, m, s}
	}

	cases := []struct {
		name string
		in   interface{}
		ref  string
		want float64
		ok   bool
	}{
		{name: "north", in: triple(rational{40, 1}, rational{26, 1}, rational{46, 1}), ref: "N", want: 40.446111, ok: true},
		{name: "west negates", in: triple(rational{79, 1}, rational{56, 1}, rational{55, 1}), ref: "W", want: -79.948611, ok: true},
		{name: "south negates", in: triple(1.0, 30.0, 0.0), ref: "S", want: -1.5, ok: true},
		{name: "missing reference stays positive", in: triple(10.0, 0.0, 0.0), ref: "", want: 10, ok: true},
		{name: "mixed component types", in: triple(40, rational{26, 1}, 46.0), ref: "N", want: 40.446111, ok: true},
		{name: "two components", in: []interface{}{rational{40, 1}, rational{26, 1}}},
		{name: "empty slice", in: []interface{}{}},
		{name: "not a slice", in: rational{40, 1}},
		{name: "nil"},
		{name: "uncoercible component", in: triple(rational{40, 1}, rational{26, 0}, rational{46, 1}), ref: "N"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dmsToDecimal(tc.in, tc.ref)
			if !tc.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tc.want, *got, 0.0001)
		})
	}
}

func TestExtractGPSFixture(t *testing.T) {
	data, err := Extract(bytes.NewReader(exiftest.GPSFixture()))
	require.NoError(t, err)

	assert.Equal(t, "Canon", data.Make)
	assert.Equal(t, "Canon EOS 5D", data.Model)

	require.NotNil(t, data.GPS)
	require.NotNil(t, data.GPS.Latitude)
	require.NotNil(t, data.GPS.Longitude)
	require.NotNil(t, data.GPS.Altitude)
	assert.InDelta(t, 40.4461, *data.GPS.Latitude, 0.0001)
	assert.InDelta(t, -79.9486, *data.GPS.Longitude, 0.0001)
	assert.InDelta(t, 123.4, *data.GPS.Altitude, 0.0001)
}

func TestExtractRawTIFF(t *testing.T) {
	block := exiftest.BuildTIFF(
		[]exiftest.Entry{exiftest.ASCII(exiftest.TagMake, "Canon")},
		[]exiftest.Entry{
			exiftest.ASCII(exiftest.TagGPSLatRef, "N"),
			exiftest.Rational(exiftest.TagGPSLat, [2]uint32{40, 1}, [2]uint32{26, 1}, [2]uint32{46, 1}),
		})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	assert.Equal(t, "Canon", data.Make)
	require.NotNil(t, data.GPS)
	require.NotNil(t, data.GPS.Latitude)
	assert.InDelta(t, 40.4461, *data.GPS.Latitude, 0.0001)
	assert.Nil(t, data.GPS.Longitude)
}

func TestExtractAltitudeBelowSeaLevel(t *testing.T) {
	block := exiftest.BuildTIFF(nil, []exiftest.Entry{
		exiftest.Byte(exiftest.TagGPSAltRef, 1),
		exiftest.Rational(exiftest.TagGPSAlt, [2]uint32{1234, 10}),
	})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	require.NotNil(t, data.GPS)
	require.NotNil(t, data.GPS.Altitude)
	assert.InDelta(t, -123.4, *data.GPS.Altitude, 0.0001)
	assert.Nil(t, data.GPS.Latitude)
	assert.Nil(t, data.GPS.Longitude)
}

func TestExtractAltitudeWithoutRef(t *testing.T) {
	block := exiftest.BuildTIFF(nil, []exiftest.Entry{
		exiftest.Rational(exiftest.TagGPSAlt, [2]uint32{100, 1}),
	})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	require.NotNil(t, data.GPS)
	require.NotNil(t, data.GPS.Altitude)
	assert.InDelta(t, 100.0, *data.GPS.Altitude, 0.0001, "absent reference defaults to above sea level")
}

func TestExtractAltitudeZeroDenominator(t *testing.T) {
	block := exiftest.BuildTIFF(nil, []exiftest.Entry{
		exiftest.Byte(exiftest.TagGPSAltRef, 1),
		exiftest.Rational(exiftest.TagGPSAlt, [2]uint32{1234, 0}),
	})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	require.NotNil(t, data.GPS)
	assert.Nil(t, data.GPS.Altitude)
}

func TestExtractZeroDenominator(t *testing.T) {
	block := exiftest.BuildTIFF(nil, []exiftest.Entry{
		exiftest.ASCII(exiftest.TagGPSLatRef, "N"),
		exiftest.Rational(exiftest.TagGPSLat, [2]uint32{40, 1}, [2]uint32{26, 0}, [2]uint32{46, 1}),
		exiftest.ASCII(exiftest.TagGPSLonRef, "E"),
		exiftest.Rational(exiftest.TagGPSLon, [2]uint32{12, 1}, [2]uint32{30, 1}, [2]uint32{0, 1}),
	})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	require.NotNil(t, data.GPS)
	assert.Nil(t, data.GPS.Latitude, "zero denominator must not become a coordinate")
	require.NotNil(t, data.GPS.Longitude)
	assert.InDelta(t, 12.5, *data.GPS.Longitude, 0.0001)
}

func TestExtractTruncatedTriple(t *testing.T) {
	block := exiftest.BuildTIFF(nil, []exiftest.Entry{
		exiftest.Rational(exiftest.TagGPSLat, [2]uint32{40, 1}, [2]uint32{26, 1}),
	})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	require.NotNil(t, data.GPS)
	assert.Nil(t, data.GPS.Latitude)
}

func TestExtractNoGPS(t *testing.T) {
	block := exiftest.BuildTIFF([]exiftest.Entry{exiftest.ASCII(exiftest.TagMake, "Nikon")}, nil)

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	assert.Equal(t, "Nikon", data.Make)
	assert.Nil(t, data.GPS)
}

func TestExtractEmptyGPSDirectory(t *testing.T) {
	block := exiftest.BuildTIFF([]exiftest.Entry{exiftest.ASCII(exiftest.TagMake, "Nikon")}, []exiftest.Entry{})

	data, err := Extract(bytes.NewReader(block))
	require.NoError(t, err)

	assert.Equal(t, "Nikon", data.Make)
	assert.Nil(t, data.GPS)
}

func TestExtractNoExif(t *testing.T) {
	data, err := Extract(bytes.NewReader([]byte{0xFF, 0xD8, 0xFF, 0xD9}))
	assert.Error(t, err)
	assert.Nil(t, data)
}

// goexif merges GPS tags into its flat field map while decoding, so the
// nested-directory path has to be pinned in isolation; Extract would still
// succeed through gpsFlat if gpsSubDir came back empty.
func TestGPSSubDirLookup(t *testing.T) {
	x, err := exif.Decode(bytes.NewReader(exiftest.GPSFixture()))
	require.NoError(t, err)

	ts := gpsSubDir(x)
	require.NotEmpty(t, ts)
	assert.Equal(t, "N", ts[exif.GPSLatitudeRef])
	assert.Equal(t, "W", ts[exif.GPSLongitudeRef])

	info := ts.gpsInfo()
	require.NotNil(t, info.Latitude)
	assert.InDelta(t, 40.4461, *info.Latitude, 0.0001)
	require.NotNil(t, info.Longitude)
	assert.InDelta(t, -79.9486, *info.Longitude, 0.0001)
	require.NotNil(t, info.Altitude)
	assert.InDelta(t, 123.4, *info.Altitude, 0.0001)
}

func TestGPSFlatLookup(t *testing.T) {
	x, err := exif.Decode(bytes.NewReader(exiftest.GPSFixture()))
	require.NoError(t, err)

	ts := gpsFlat(x)
	require.NotEmpty(t, ts)
	assert.Equal(t, "N", ts[exif.GPSLatitudeRef])

	info := ts.gpsInfo()
	require.NotNil(t, info.Latitude)
	assert.InDelta(t, 40.4461, *info.Latitude, 0.0001)
	require.NotNil(t, info.Longitude)
	assert.InDelta(t, -79.9486, *info.Longitude, 0.0001)
}
