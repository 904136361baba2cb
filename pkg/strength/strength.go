package strength

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Specials is the punctuation set that counts toward the special class.
const Specials = `!@#$%^&*()-_=+[]{}|;:,.<>?/\`

const (
	UpperSize   = 26
	LowerSize   = 26
	DigitSize   = 10
	SpecialSize = 32
)

// Entropy thresholds in bits. Each bound belongs to the band above it.
const (
	ModerateThreshold = 40.0
	StrongThreshold   = 80.0
)

type Classes struct {
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// ClassesOf scans the password once. Only ASCII letters, ASCII digits and
// Specials set a flag; any other code point is ignored.
func ClassesOf(password string) Classes {
	var c Classes

	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			c.Upper = true
		case ch >= 'a' && ch <= 'z':
			c.Lower = true
		case ch >= '0' && ch <= '9':
			c.Digit = true
		case ch < utf8.RuneSelf && strings.ContainsRune(Specials, ch):
			c.Special = true
		}
	}

	return c
}

func (c Classes) AlphabetSize() int {
	n := 0
	if c.Upper {
		n += UpperSize
	}
	if c.Lower {
		n += LowerSize
	}
	if c.Digit {
		n += DigitSize
	}
	if c.Special {
		n += SpecialSize
	}
	return n
}

// Estimate returns the entropy of password in bits, length * log2(alphabet),
// and its category. Length counts code points.
func Estimate(password string) (float64, Category) {
	n := ClassesOf(password).AlphabetSize()
	l := utf8.RuneCountInString(password)

	if n == 0 || l == 0 {
		return 0, Weak
	}

	h := float64(l) * math.Log2(float64(n))

	return h, Classify(h)
}

func Classify(h float64) Category {
	switch {
	case h >= StrongThreshold:
		return Strong
	case h >= ModerateThreshold:
		return Moderate
	default:
		return Weak
	}
}
