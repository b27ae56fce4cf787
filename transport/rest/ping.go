package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type PingHandler struct{}

func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

func (that *PingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ping", that.ping)
}

func (that *PingHandler) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
