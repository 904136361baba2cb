package strength

import "fmt"

type Category int

const (
	Weak Category = iota
	Moderate
	Strong
)

var categoryNames = [...]string{
	Weak:     "Weak",
	Moderate: "Moderate",
	Strong:   "Strong",
}

func (c Category) String() string {
	if c < Weak || c > Strong {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if c < Weak || c > Strong {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}
