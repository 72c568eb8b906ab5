package handler

import (
	"net/http"
	"sync"
	"visitorpass/config"
	"visitorpass/di"
	"visitorpass/shared/logger"
)

var (
	app     http.Handler
	appOnce sync.Once
)

// Handler is the serverless entry point. The router is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server, _ := di.InitializeService()
		app = server.Adaptor()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
