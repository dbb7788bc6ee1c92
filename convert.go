package simdcsv

import "strconv"

// ParseInt converts a field slice to an int64. Typed-value conversion is
// explicitly a trivial boundary utility, not a feature of the parser: a
// field's meaning beyond "a byte slice" is entirely the caller's concern.
func ParseInt(field []byte) (int64, error) {
	return strconv.ParseInt(string(field), 10, 64)
}

// ParseFloat converts a field slice to a float64.
func ParseFloat(field []byte) (float64, error) {
	return strconv.ParseFloat(string(field), 64)
}
