package main

import (
	"context"
	"log"
	"net/http"

	"github.com/amiskov/folio/pkg/config"
	"github.com/amiskov/folio/pkg/devapi"
	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/middleware"
)

func main() {
	cfg := config.ParseDevAPI()
	zlog := logger.Run(cfg.LogLevel)

	srv, err := devapi.New(context.Background(), devapi.Config{SecretKey: cfg.SecretKey})
	if err != nil {
		log.Fatalf("can't start dev API: %v", err)
	}

	r := srv.Router()
	logMiddleware := middleware.NewLoggingMiddleware(zlog)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	zlog.Infof("dev API at http://%s/api, demo login %s / %s", cfg.RunAddress, devapi.DemoEmail, devapi.DemoPassword)
	log.Fatalln(http.ListenAndServe(cfg.RunAddress, r))
}
