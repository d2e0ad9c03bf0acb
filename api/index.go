package handler

import (
	"net/http"
	"sync"

	"lifecare/config"
	"lifecare/di"
	"lifecare/shared/logger"
	lifecareHTTP "lifecare/transport/http"
)

var (
	server *lifecareHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first invocation
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetOutput(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
