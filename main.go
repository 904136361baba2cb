package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/passcheck/pkg/api"
	"github.com/hatchdotlol/passcheck/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	if err := util.InitConfig(); err != nil {
		log.Fatal(err)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     util.Config.SentryDSN,
		Release: util.Config.Version,
	}); err != nil {
		log.Fatal(err)
	}
	defer sentry.Flush(time.Second * 5)

	r := api.Router()

	util.LogMessage("Starting passcheck API")

	log.Printf("Starting server at :%s\n", util.Config.Port)
	if err := http.ListenAndServe(":"+util.Config.Port, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sentry.CaptureException(err)
		log.Print(err)
	}
}
