// Package report writes batches of analyzer reports as text, json or yaml.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/hatchdotlol/passcheck/pkg/analyzer"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Entry labels a report. The label must never be the password itself.
type Entry struct {
	Label           string `json:"label" yaml:"label"`
	analyzer.Report `yaml:",inline"`
}

func Write(w io.Writer, entries []Entry, format Format, enableColor bool) error {
	switch format {
	case Text:
		return writeText(w, entries, enableColor)
	case JSON:
		return writeJSON(w, entries)
	case YAML:
		return writeYAML(w, entries)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.MarshalIndent(entries, "", "\t")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')

	_, err = w.Write(raw)
	return err
}

func writeYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, entries []Entry, enableColor bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, e := range entries {
		if e.Empty {
			fmt.Fprintf(tw, "%s\t-\t\t\n", e.Label)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f bits\t%s\n",
			e.Label, paint(e.Category.String(), e.Color, enableColor), e.Entropy, e.CrackTime)
	}

	return tw.Flush()
}

func paint(text, name string, enableColor bool) string {
	if !enableColor {
		return text
	}
	switch name {
	case analyzer.ColorWeak:
		return color.Danger.Render(text)
	case analyzer.ColorModerate:
		return color.Warn.Render(text)
	case analyzer.ColorStrong:
		return color.Success.Render(text)
	}
	return text
}
