package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/hatchdotlol/passcheck/pkg/analyzer"
	"github.com/hatchdotlol/passcheck/pkg/prompt"
	"github.com/hatchdotlol/passcheck/pkg/report"
	"github.com/hatchdotlol/passcheck/pkg/util"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const usageText = `
passcheck - password strength and crack time estimator

USAGE:

	# Type a password interactively (masked, Ctrl-T shows it)
	$ passcheck

	# Estimate passwords given as arguments
	$ passcheck -fmt=json 'hunter2' 'correct horse battery staple'

	# Estimate one password per line from stdin
	$ passcheck -fmt=yaml < passwords.txt

`

type options struct {
	format      string
	rate        float64
	color       bool
	delay       time.Duration
	interactive bool
}

func main() {
	godotenv.Load()

	if err := util.InitConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var opts options
	fs := flag.NewFlagSet("passcheck", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fmt.Fprint(fs.Output(), "OPTIONS:\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.format, "fmt", "text", "Output format for batch mode: text, json or yaml")
	fs.Float64Var(&opts.rate, "rate", util.Config.GuessRate, "Assumed attacker guesses per second")
	fs.BoolVar(&opts.color, "color", true, "Colorize output")
	fs.DurationVar(&opts.delay, "delay", util.Config.DebounceDelay, "Pause after the last keystroke before re-estimating")
	fs.BoolVar(&opts.interactive, "i", false, "Force interactive mode")
	fs.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, fs.Args(), os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		slog.Error("passcheck failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, args []string, stdin *os.File, stdout io.Writer) error {
	if !(opts.rate > 0) {
		return fmt.Errorf("-rate must be greater than 0, got %v", opts.rate)
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	a := analyzer.New(opts.rate)
	fd := int(stdin.Fd())

	if opts.interactive || (len(args) == 0 && term.IsTerminal(fd)) {
		return interactive(ctx, a, opts, stdin, stdout)
	}

	var passwords []string
	if len(args) > 0 {
		passwords = args
	} else {
		passwords, err = readLines(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	return report.Write(stdout, batch(a, passwords), format, opts.color)
}

// readLines splits r into lines of any length. A trailing \r is dropped so
// CRLF input reads the same as LF input.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func batch(a *analyzer.Analyzer, passwords []string) []report.Entry {
	entries := make([]report.Entry, 0, len(passwords))
	for i, pw := range passwords {
		entries = append(entries, report.Entry{
			Label:  "#" + strconv.Itoa(i+1),
			Report: a.Analyze(pw),
		})
	}
	return entries
}

func interactive(ctx context.Context, a *analyzer.Analyzer, opts options, stdin *os.File, stdout io.Writer) error {
	fd := int(stdin.Fd())

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("switching terminal to raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}

	s := prompt.New(stdin, stdout, a,
		prompt.WithDelay(opts.delay),
		prompt.WithColor(opts.color),
	)

	r, err := s.Run(ctx)
	if err != nil {
		return err
	}

	slog.Debug("interactive check finished", "length", r.Length, "category", r.Category.String())
	return nil
}
