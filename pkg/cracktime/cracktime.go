// Package cracktime turns an entropy figure into a human readable estimate of
// how long an exhaustive offline search would take.
package cracktime

import (
	"fmt"
	"math"
)

// DefaultGuessRate is the assumed attacker throughput in guesses per second.
const DefaultGuessRate = 1e9

// Unbounded is returned when the search time does not fit in a float64.
const Unbounded = "over a trillion years"

type unit struct {
	name    string
	seconds float64
}

// Largest first.
var units = [...]unit{
	{"year", 31536000},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

type band struct {
	name  string
	value float64
}

var bands = [...]band{
	{"trillion", 1e12},
	{"billion", 1e9},
	{"million", 1e6},
	{"thousand", 1e3},
}

// Seconds is 2^entropyBits / guessesPerSecond. It is +Inf when the power
// overflows or the rate is not a positive number.
func Seconds(entropyBits, guessesPerSecond float64) float64 {
	if !(guessesPerSecond > 0) {
		return math.Inf(1)
	}
	return math.Pow(2, entropyBits) / guessesPerSecond
}

func Format(entropyBits, guessesPerSecond float64) string {
	s := Seconds(entropyBits, guessesPerSecond)
	if math.IsInf(s, 1) || math.IsNaN(s) {
		return Unbounded
	}

	switch {
	case s < 1e-6:
		return "less than 1 microsecond"
	case s < 1e-3:
		return fmt.Sprintf("%.1f microseconds", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.1f milliseconds", s*1e3)
	}

	for _, u := range units {
		if s < u.seconds {
			continue
		}
		return scaled(s/u.seconds, u.name)
	}

	return Unbounded
}

func FormatDefault(entropyBits float64) string {
	return Format(entropyBits, DefaultGuessRate)
}

func scaled(v float64, unit string) string {
	for _, b := range bands {
		if v >= b.value {
			return fmt.Sprintf("%.1f %s %ss", v/b.value, b.name, unit)
		}
	}
	return fmt.Sprintf("%.1f %ss", v, unit)
}
