package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/hatchdotlol/passcheck/pkg/analyzer"
	"github.com/hatchdotlol/passcheck/pkg/models"
	"github.com/hatchdotlol/passcheck/pkg/util"
)

var validate = validator.New()

func EstimateRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(NoStore)
	r.Use(middleware.AllowContentType("application/json"))
	r.Post("/", estimate)
	return r
}

func estimate(w http.ResponseWriter, r *http.Request) {
	var form models.EstimateForm

	body := util.HttpBody(w, r, util.Config.MaxBodyBytes)
	if body == nil {
		SendError(w, InvalidForm)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		SendError(w, InvalidForm)
		return
	}

	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].StructField() == "GuessesPerSecond" {
			SendError(w, InvalidGuessRate)
			return
		}
		SendError(w, InvalidForm)
		return
	}

	if utf8.RuneCountInString(form.Password) > util.Config.MaxPasswordLength {
		SendError(w, PasswordTooLong)
		return
	}

	rate := util.Config.GuessRate
	if form.GuessesPerSecond != nil {
		rate = *form.GuessesPerSecond
	}

	sendJSON(w, analyzer.New(rate).Analyze(form.Password))
}
