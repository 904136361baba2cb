package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

var discordClient = http.Client{
	Timeout: time.Duration(10) * time.Second,
}

// Log message to discord and sentry
func LogMessage(content string) {
	slog.Info(content)

	if Config.LoggingWebhook != nil {
		if err := postWebhook(*Config.LoggingWebhook, content); err != nil {
			slog.Warn("Webhook delivery failed", "err", err)
			sentry.CaptureException(err)
		}
	}

	sentry.CaptureMessage(content)
}

func postWebhook(url, content string) error {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return err
	}

	resp, err := discordClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to log to discord: %s", resp.Status)
	}

	return nil
}
