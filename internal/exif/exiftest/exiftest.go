// internal/exif/exiftest/exiftest.go

// Package exiftest builds synthetic TIFF blocks and JPEG wrappers for
// decoder tests. Values are laid out little-endian with absolute offsets,
// the way camera firmware writes them.
package exiftest

import (
	"bytes"
	"encoding/binary"
)

const (
	TagMake       = 0x010f
	TagModel      = 0x0110
	TagGPSPointer = 0x8825

	TagGPSLatRef = 0x0001
	TagGPSLat    = 0x0002
	TagGPSLonRef = 0x0003
	TagGPSLon    = 0x0004
	TagGPSAltRef = 0x0005
	TagGPSAlt    = 0x0006
)

// Entry is one image file directory entry.
type Entry struct {
	ID    uint16
	Type  uint16
	Count uint32
	Value []byte
}

// ASCII returns a NUL-terminated string entry.
func ASCII(id uint16, s string) Entry {
	v := append([]byte(s), 0)
	return Entry{ID: id, Type: 2, Count: uint32(len(v)), Value: v}
}

// Rational returns an unsigned rational entry, one numerator/denominator
// pair per component.
func Rational(id uint16, pairs ...[2]uint32) Entry {
	b := &bytes.Buffer{}
	for _, p := range pairs {
		binary.Write(b, binary.LittleEndian, p[0])
		binary.Write(b, binary.LittleEndian, p[1])
	}
	return Entry{ID: id, Type: 5, Count: uint32(len(pairs)), Value: b.Bytes()}
}

// Byte returns a single-byte entry.
func Byte(id uint16, v byte) Entry {
	return Entry{ID: id, Type: 1, Count: 1, Value: []byte{v}}
}

// BuildTIFF lays out a little-endian TIFF block: header, main directory with
// its overflow values, then an optional GPS directory referenced by a
// directory pointer entry. Pass a nil gps slice for an image without a GPS
// block; an empty non-nil slice produces a pointer to an empty directory.
func BuildTIFF(main, gps []Entry) []byte {
	if gps != nil {
		main = append(main, Entry{ID: TagGPSPointer, Type: 4, Count: 1, Value: []byte{0, 0, 0, 0}})
	}

	gpsStart := 8 + ifdSize(main)
	if gps != nil {
		binary.LittleEndian.PutUint32(main[len(main)-1].Value, gpsStart)
	}

	b := &bytes.Buffer{}
	b.WriteString("II")
	binary.Write(b, binary.LittleEndian, uint16(42))
	binary.Write(b, binary.LittleEndian, uint32(8))
	writeIFD(b, main)
	if gps != nil {
		writeIFD(b, gps)
	}
	return b.Bytes()
}

func ifdSize(entries []Entry) uint32 {
	size := uint32(2 + 12*len(entries) + 4)
	for _, e := range entries {
		if len(e.Value) > 4 {
			size += uint32(len(e.Value))
		}
	}
	return size
}

// writeIFD appends the entry table followed by the overflow value area, so
// overflow offsets are absolute within the block built so far.
func writeIFD(b *bytes.Buffer, entries []Entry) {
	dataStart := uint32(b.Len()) + uint32(2+12*len(entries)+4)
	data := &bytes.Buffer{}

	binary.Write(b, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(b, binary.LittleEndian, e.ID)
		binary.Write(b, binary.LittleEndian, e.Type)
		binary.Write(b, binary.LittleEndian, e.Count)
		if len(e.Value) <= 4 {
			padded := make([]byte, 4)
			copy(padded, e.Value)
			b.Write(padded)
		} else {
			binary.Write(b, binary.LittleEndian, dataStart+uint32(data.Len()))
			data.Write(e.Value)
		}
	}
	b.Write([]byte{0, 0, 0, 0})
	b.Write(data.Bytes())
}

// WrapJPEG embeds a TIFF block in a minimal JPEG APP1 segment.
func WrapJPEG(tiffBlock []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffBlock...)
	length := len(payload) + 2

	out := []byte{0xFF, 0xD8, 0xFF, 0xE1, byte(length >> 8), byte(length)}
	out = append(out, payload...)
	return append(out, 0xFF, 0xD9)
}

// GPSFixture is a JPEG of a camera shot at 40°26'46"N 79°56'55"W,
// 123.4m above sea level, taken on a Canon EOS 5D.
func GPSFixture() []byte {
	return WrapJPEG(BuildTIFF(
		[]Entry{
			ASCII(TagMake, "Canon"),
			ASCII(TagModel, "Canon EOS 5D"),
		},
		[]Entry{
			ASCII(TagGPSLatRef, "N"),
			Rational(TagGPSLat, [2]uint32{40, 1}, [2]uint32{26, 1}, [2]uint32{46, 1}),
			ASCII(TagGPSLonRef, "W"),
			Rational(TagGPSLon, [2]uint32{79, 1}, [2]uint32{56, 1}, [2]uint32{55, 1}),
			Byte(TagGPSAltRef, 0),
			Rational(TagGPSAlt, [2]uint32{1234, 10}),
		}))
}
