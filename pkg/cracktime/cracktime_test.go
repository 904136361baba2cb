package cracktime

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDefaultRate(t *testing.T) {
	tests := []struct {
		entropy float64
		want    string
	}{
		{0, "less than 1 microsecond"},
		{9, "less than 1 microsecond"},
		{10, "1.0 microseconds"},
		{19, "524.3 microseconds"},
		{20, "1.0 milliseconds"},
		{29, "536.9 milliseconds"},
		{30, "1.1 seconds"},
		{36, "1.1 minutes"},
		{40, "18.3 minutes"},
		{45, "9.8 hours"},
		{50, "13.0 days"},
		{60, "36.6 years"},
		{70, "37.4 thousand years"},
		{80, "38.3 million years"},
		{90, "39.3 billion years"},
		{100, "40.2 trillion years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDefault(tt.entropy), "entropy %v", tt.entropy)
		assert.Equal(t, tt.want, Format(tt.entropy, DefaultGuessRate), "entropy %v", tt.entropy)
	}
}

func TestFormatCustomRate(t *testing.T) {
	assert.Equal(t, "1.0 seconds", Format(0, 1))
	assert.Equal(t, "17.1 minutes", Format(10, 1))
	assert.Equal(t, "1.0 hours", Format(0, 1.0/3600))
	assert.Equal(t, "1.0 days", Format(0, 1.0/86400))
	assert.Equal(t, "1.0 years", Format(0, 1.0/31536000))
}

func TestFormatAlwaysPlural(t *testing.T) {
	assert.Equal(t, "1.0 seconds", Format(0, 1))
	assert.Equal(t, "1.0 minutes", Format(0, 1.0/60))
}

func TestFormatTrillionYears(t *testing.T) {
	h := 200.0
	years := math.Pow(2, h) / DefaultGuessRate / 31536000
	got := Format(h, DefaultGuessRate)
	assert.Contains(t, got, "trillion years")

	var x float64
	_, err := fmt.Sscan(got, &x)
	assert.NoError(t, err)
	assert.InEpsilon(t, years/1e12, x, 1e-3)
}

func TestFormatOverflow(t *testing.T) {
	for _, h := range []float64{1024, 2000, 1e9, math.MaxFloat64, math.Inf(1)} {
		assert.Equal(t, Unbounded, FormatDefault(h), "entropy %v", h)
	}
	assert.True(t, math.IsInf(Seconds(5000, DefaultGuessRate), 1))
}

func TestFormatLargestFiniteEntropy(t *testing.T) {
	got := FormatDefault(1023)
	assert.Contains(t, got, "trillion years")
}

func TestFormatBadRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN()} {
		assert.Equal(t, Unbounded, Format(10, rate))
	}
}

func TestFormatNaNEntropy(t *testing.T) {
	assert.Equal(t, Unbounded, Format(math.NaN(), DefaultGuessRate))
}

func TestFormatNeverEmpty(t *testing.T) {
	for h := 0.0; h < 1100; h += 0.7 {
		assert.NotEmpty(t, FormatDefault(h))
	}
}
