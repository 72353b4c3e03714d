package handler

import (
	"net/http"
	"starlight/config"
	"starlight/di"
	"starlight/shared/logger"
	"starlight/transport/http/response"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.Configure(cfg)

	server, err := di.InitializeService()
	if err != nil {
		response.WithError(w, err)

		return
	}

	server.Handler().ServeHTTP(w, r)
}
