package util

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hatchdotlol/passcheck/pkg/cracktime"
	"github.com/hatchdotlol/passcheck/pkg/debounce"
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

var Config config

type config struct {
	StartTime         int64
	Version           string
	Port              string   `validate:"required,numeric"`
	SentryDSN         string
	GuessRate         float64  `validate:"gt=0"`
	MaxPasswordLength int      `validate:"gt=0"`
	MaxBodyBytes      int64    `validate:"gt=0"`
	AllowedOrigins    []string `validate:"min=1,dive,required"`
	LoggingWebhook    *string  `validate:"omitempty,url"`
	DebounceDelay     time.Duration
}

func InitConfig() error {
	c, err := LoadConfig(os.Getenv)
	if err != nil {
		return err
	}

	Config = c
	return nil
}

// LoadConfig reads settings through getenv so tests can supply their own
// environment.
func LoadConfig(getenv func(string) string) (config, error) {
	c := config{
		StartTime:         time.Now().Unix(),
		Version:           getenv("VERSION"),
		Port:              "8080",
		SentryDSN:         getenv("SENTRY_DSN"),
		GuessRate:         cracktime.DefaultGuessRate,
		MaxPasswordLength: 1024,
		MaxBodyBytes:      64 << 10,
		AllowedOrigins:    []string{"*"},
		DebounceDelay:     debounce.DefaultDelay,
	}

	if p := getenv("PORT"); p != "" {
		c.Port = p
	}

	if w := getenv("LOGGING_WEBHOOK"); w != "" {
		c.LoggingWebhook = &w
	}

	if o := getenv("CORS_ORIGINS"); o != "" {
		c.AllowedOrigins = nil
		for _, origin := range strings.Split(o, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}

	var errs []error

	if r := getenv("GUESS_RATE"); r != "" {
		rate, err := strconv.ParseFloat(r, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GUESS_RATE: %w", err))
		}
		c.GuessRate = rate
	}

	if l := getenv("MAX_PASSWORD_LENGTH"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAX_PASSWORD_LENGTH: %w", err))
		}
		c.MaxPasswordLength = n
	}

	if b := getenv("MAX_BODY_BYTES"); b != "" {
		n, err := strconv.ParseInt(b, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAX_BODY_BYTES: %w", err))
		}
		c.MaxBodyBytes = n
	}

	if ms := getenv("DEBOUNCE_MS"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n < 0 {
			slog.Warn("Ignoring invalid DEBOUNCE_MS", "value", ms)
		} else {
			c.DebounceDelay = time.Duration(n) * time.Millisecond
		}
	}

	if len(errs) > 0 {
		return config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	if err := validate.Struct(c); err != nil {
		return config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Version == "" {
		slog.Warn("No VERSION configured")
	}

	return c, nil
}
