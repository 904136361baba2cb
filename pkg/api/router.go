package api

import (
	"fmt"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hatchdotlol/passcheck/pkg/util"
	"github.com/rs/cors"
)

func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"startTime": "%d", "version": %q}`, util.Config.StartTime, util.Config.Version)
}

func Router() *chi.Mux {
	r := chi.NewRouter()

	cors := cors.New(cors.Options{
		AllowedOrigins:   util.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})

	r.Use(cors.Handler)
	r.Use(middleware.Recoverer)
	r.Use(sentryHandler.Handle)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { SendError(w, NotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { SendError(w, MethodNotAllowed) })

	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/", Root)

	r.Mount("/estimate", EstimateRouter())
	r.Get("/schema", schema)

	return r
}
