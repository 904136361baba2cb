package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
)

type Error struct {
	err  string
	code int
}

func (e Error) Error() string { return e.err }

var (
	NotFound            = Error{err: "Resource not found", code: http.StatusNotFound}
	MethodNotAllowed    = Error{err: "Method not allowed", code: http.StatusMethodNotAllowed}
	InternalServerError = Error{err: "Internal server error", code: http.StatusInternalServerError}
	InvalidForm         = Error{err: "Invalid form", code: http.StatusBadRequest}
	InvalidGuessRate    = Error{err: "guessesPerSecond must be greater than 0", code: http.StatusBadRequest}
	PasswordTooLong     = Error{err: "Password is too long", code: http.StatusBadRequest}
)

func SendError(w http.ResponseWriter, err Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.code)

	msg, _ := json.Marshal(err.err)
	fmt.Fprintf(w, "{\"error\": %s}", msg)
}

func sendJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		sentry.CaptureException(err)
		SendError(w, InternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
