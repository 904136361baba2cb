// Package prompt runs an interactive password check on a terminal. Input is
// read one rune at a time, echoed masked, and analyzed once typing pauses.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gookit/color"
	"github.com/hatchdotlol/passcheck/pkg/analyzer"
	"github.com/hatchdotlol/passcheck/pkg/debounce"
)

var ErrInterrupted = errors.New("interrupted")

const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOT       = 0x04 // Ctrl-D
	keyBackspace = 0x08
	keyToggle    = 0x14 // Ctrl-T
	keyEscape    = 0x1b
	keyDelete    = 0x7f

	barWidth  = 20
	eraseLine = "\r\x1b[2K"
)

type Session struct {
	in       *bufio.Reader
	out      io.Writer
	analyzer *analyzer.Analyzer

	delay  time.Duration
	color  bool
	hidden bool

	mu     sync.Mutex
	input  []rune
	report analyzer.Report
}

type Option func(*Session)

func WithDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

func WithColor(enabled bool) Option {
	return func(s *Session) { s.color = enabled }
}

func WithHidden(hidden bool) Option {
	return func(s *Session) { s.hidden = hidden }
}

func New(in io.Reader, out io.Writer, a *analyzer.Analyzer, opts ...Option) *Session {
	s := &Session{
		in:       bufio.NewReader(in),
		out:      out,
		analyzer: a,
		delay:    debounce.DefaultDelay,
		hidden:   true,
		report:   analyzer.Report{Empty: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads keys until Enter or EOF and returns the final report. Ctrl-C and
// Ctrl-D return ErrInterrupted. A read blocked in the underlying reader is
// abandoned, not interrupted, when ctx is cancelled.
func (s *Session) Run(ctx context.Context) (analyzer.Report, error) {
	d := debounce.New(s.delay, s.analyze)
	defer d.Cancel()

	done := make(chan struct{})
	defer close(done)

	keys := make(chan rune)
	errc := make(chan error, 1)
	go func() {
		for {
			r, _, err := s.in.ReadRune()
			if err != nil {
				errc <- err
				return
			}
			select {
			case keys <- r:
			case <-done:
				return
			}
		}
	}()

	s.mu.Lock()
	s.renderLocked()
	s.mu.Unlock()

	escaping := false
	for {
		select {
		case <-ctx.Done():
			return analyzer.Report{}, ctx.Err()

		case err := <-errc:
			if errors.Is(err, io.EOF) {
				return s.finish(d), nil
			}
			return analyzer.Report{}, fmt.Errorf("reading input: %w", err)

		case r := <-keys:
			if escaping {
				// CSI and SS3 sequences end with a byte in 0x40..0x7e.
				// Any other key right after Esc is read as Alt+key and
				// dropped, so "\x1bab" types only "b".
				escaping = r == '[' || r == 'O' || r < 0x40 || r > 0x7e
				continue
			}

			switch r {
			case '\r', '\n':
				return s.finish(d), nil
			case keyInterrupt, keyEOT:
				d.Cancel()
				s.write("\r\n")
				return analyzer.Report{}, ErrInterrupted
			case keyEscape:
				escaping = true
			case keyToggle:
				s.mu.Lock()
				s.hidden = !s.hidden
				s.renderLocked()
				s.mu.Unlock()
			case keyBackspace, keyDelete:
				s.edit(d, func(in []rune) []rune {
					if len(in) == 0 {
						return in
					}
					return in[:len(in)-1]
				})
			default:
				if unicode.IsPrint(r) {
					s.edit(d, func(in []rune) []rune { return append(in, r) })
				}
			}
		}
	}
}

func (s *Session) edit(d *debounce.Debouncer, f func([]rune) []rune) {
	s.mu.Lock()
	s.input = f(s.input)
	s.renderLocked()
	s.mu.Unlock()

	d.Trigger()
}

func (s *Session) finish(d *debounce.Debouncer) analyzer.Report {
	d.Flush()

	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, "\r\n")
	return s.report
}

func (s *Session) analyze() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report = s.analyzer.Analyze(string(s.input))
	s.renderLocked()
}

func (s *Session) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, text)
}

func (s *Session) renderLocked() {
	var b strings.Builder

	b.WriteString(eraseLine)
	b.WriteString("Password: ")
	if s.hidden {
		b.WriteString(strings.Repeat("*", len(s.input)))
	} else {
		b.WriteString(string(s.input))
	}

	paint := s.painter(s.report.Color)
	filled := 0
	if !s.report.Empty {
		filled = int(math.Round(s.report.Progress * barWidth))
	}
	b.WriteString(" [")
	b.WriteString(paint(strings.Repeat("#", filled)))
	b.WriteString(strings.Repeat(".", barWidth-filled))
	b.WriteString("] Strength: ")
	if !s.report.Empty {
		b.WriteString(paint(s.report.Category.String()))
	}
	b.WriteString(" | Time to crack: ")
	if !s.report.Empty {
		b.WriteString(s.report.CrackTime)
	}

	fmt.Fprint(s.out, b.String())
}

func (s *Session) painter(name string) func(a ...any) string {
	if !s.color {
		return fmt.Sprint
	}
	switch name {
	case analyzer.ColorWeak:
		return color.Red.Render
	case analyzer.ColorModerate:
		return color.Yellow.Render
	case analyzer.ColorStrong:
		return color.Green.Render
	}
	return fmt.Sprint
}
