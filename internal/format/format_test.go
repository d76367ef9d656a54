package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		bitSize   int
		expected  string
	}{
		{"integer value drops the point", 6, -1, 64, "6"},
		{"shortest round-trip", 0.1, -1, 64, "0.1"},
		{"negative", -2.5, -1, 64, "-2.5"},
		{"fixed significant digits", 101325, 3, 64, "1.01e+05"},
		{"large magnitude uses exponent", 3.6e6, -1, 64, "3.6e+06"},
		{"float32 width avoids artifact digits", float64(float32(0.1)), -1, 32, "0.1"},
		{"zero", 0, -1, 64, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Number(tt.value, tt.precision, tt.bitSize))
		})
	}
}

func TestShortest(t *testing.T) {
	assert.Equal(t, "0.30000000000000004", Shortest(0.1+0.2))
	assert.Equal(t, "0.3", Shortest(0.3))
}
