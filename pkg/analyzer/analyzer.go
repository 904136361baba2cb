package analyzer

import (
	"math"
	"unicode/utf8"

	"github.com/hatchdotlol/passcheck/pkg/cracktime"
	"github.com/hatchdotlol/passcheck/pkg/strength"
)

// Bar colors per category.
const (
	ColorWeak     = "red"
	ColorModerate = "yellow"
	ColorStrong   = "green"
)

// Entropy that fills the strength bar.
const fullBar = 100.0

type Report struct {
	Empty     bool              `json:"empty" yaml:"empty"`
	Length    int               `json:"length" yaml:"length"`
	Entropy   float64           `json:"entropy" yaml:"entropy"`
	Category  strength.Category `json:"category" yaml:"category" jsonschema:"type=string,enum=Weak,enum=Moderate,enum=Strong"`
	CrackTime string            `json:"crackTime" yaml:"crackTime"`
	Progress  float64           `json:"progress" yaml:"progress"`
	Color     string            `json:"color" yaml:"color"`
}

type Analyzer struct {
	GuessRate float64
}

func New(guessRate float64) *Analyzer {
	return &Analyzer{GuessRate: guessRate}
}

// Analyze runs the estimator and formats the crack time. An empty password
// gives a report with only Empty set so callers can blank their display.
func (a *Analyzer) Analyze(password string) Report {
	if password == "" {
		return Report{Empty: true}
	}

	h, category := strength.Estimate(password)

	return Report{
		Length:    utf8.RuneCountInString(password),
		Entropy:   h,
		Category:  category,
		CrackTime: cracktime.Format(h, a.GuessRate),
		Progress:  math.Min(h/fullBar, 1),
		Color:     ColorOf(category),
	}
}

func ColorOf(c strength.Category) string {
	switch c {
	case strength.Strong:
		return ColorStrong
	case strength.Moderate:
		return ColorModerate
	default:
		return ColorWeak
	}
}
