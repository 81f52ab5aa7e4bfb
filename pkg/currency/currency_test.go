package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinor(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{2500, "$25.00"},
		{10000, "$100.00"},
		{1234567, "$12345.67"},
		{-250, "-$2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinor(tt.minor))
	}
}

func TestParseMajor(t *testing.T) {
	t.Run("accepts up to two decimal places", func(t *testing.T) {
		tests := []struct {
			in   string
			want int64
		}{
			{"25", 2500},
			{"25.5", 2550},
			{"25.50", 2550},
			{"1", 100},
			{"0.01", 1},
			{" 10 ", 1000},
		}
		for _, tt := range tests {
			got, err := ParseMajor(tt.in)
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, in := range []string{"", ".", "abc", "25.123", "-5", "+5", "1e3", "12.3.4", "0", "0.00"} {
			_, err := ParseMajor(in)
			assert.Error(t, err, in)
		}
	})
}

func TestProgressPercent(t *testing.T) {
	t.Run("example from the contribution rules", func(t *testing.T) {
		assert.Equal(t, 25, ProgressPercent(2500, 10000))
	})

	t.Run("zero price yields zero, not an error", func(t *testing.T) {
		assert.Equal(t, 0, ProgressPercent(2500, 0))
		assert.Equal(t, 0, ProgressPercent(0, 0))
	})

	t.Run("clamped into [0,100]", func(t *testing.T) {
		assert.Equal(t, 0, ProgressPercent(-100, 10000))
		assert.Equal(t, 100, ProgressPercent(20000, 10000))
		assert.Equal(t, 100, ProgressPercent(10000, 10000))
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		assert.Equal(t, 33, ProgressPercent(100, 300))
		assert.Equal(t, 67, ProgressPercent(200, 300))
	})

	t.Run("monotonic in the current amount", func(t *testing.T) {
		price := int64(33333)
		last := 0
		for current := int64(0); current <= price+5000; current += 777 {
			p := ProgressPercent(current, price)
			assert.GreaterOrEqual(t, p, last)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
			last = p
		}
	})
}
