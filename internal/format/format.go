// Package format provides the shared number-to-string routine used by every
// quantity serialization method and by the phq CLI output paths.
package format

import "strconv"

// Number formats a floating-point value. A negative precision selects the
// shortest representation that round-trips exactly for the given bit size;
// otherwise precision is the number of significant digits. bitSize must be
// 32 or 64 and should match the numeric representation the value came from,
// so float32-backed quantities do not print artifact digits.
func Number(value float64, precision, bitSize int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(value, 'g', precision, bitSize)
}

// Shortest formats a float64 with the shortest exact representation.
func Shortest(value float64) string {
	return Number(value, -1, 64)
}
