// internal/exif/coerce.go
package exif

// rational is a raw EXIF numerator/denominator pair, kept undivided so a
// zero denominator can be rejected instead of divided by.
type rational struct {
	num int64
	den int64
}

// toFloat coerces one tag component to a float64. The second return is false
// when the component is missing, non-numeric, or a rational with a zero
// denominator. Already-numeric values pass through unchanged.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case rational:
		if n.den == 0 {
			return 0, false
		}
		return float64(n.num) / float64(n.den), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
