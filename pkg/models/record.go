package models

import "strconv"

// Record is one report row for a single photo. Every field except Path is
// optional; nil means the value could not be determined from the file.
type Record struct {
	Path      string
	Latitude  *float64
	Longitude *float64
	Altitude  *float64
	Camera    *string
	DayNight  string
}

func NewRecord(path string) *Record {
	return &Record{Path: path}
}

// Columns returns the fixed report header, in output order.
func Columns() []string {
	return []string{"Photo Path", "Latitude", "Longitude", "Altitude", "Make/Model", "Day/Night"}
}

// Row renders the record for CSV output. Absent values render as empty cells.
// Floats use the shortest decimal form that round-trips.
func (r *Record) Row() []string {
	return []string{
		r.Path,
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		formatFloat(r.Altitude),
		stringOrEmpty(r.Camera),
		r.DayNight,
	}
}

// Cells renders the record for spreadsheet output. Coordinates stay numeric
// so spreadsheet tools can sort and chart them; absent values are empty cells.
func (r *Record) Cells() []interface{} {
	cells := make([]interface{}, 0, len(Columns()))
	cells = append(cells, r.Path)
	for _, f := range []*float64{r.Latitude, r.Longitude, r.Altitude} {
		if f == nil {
			cells = append(cells, nil)
		} else {
			cells = append(cells, *f)
		}
	}
	if r.Camera == nil {
		cells = append(cells, nil)
	} else {
		cells = append(cells, *r.Camera)
	}
	cells = append(cells, r.DayNight)
	return cells
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
