package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Router(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)

	r.HandleFunc("/submit", h.SubmitForm).Methods(http.MethodGet)
	r.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)

	r.HandleFunc("/track", h.Track).Methods(http.MethodGet)

	r.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/{id}/actions/{action}", h.PerformAction).Methods(http.MethodPost)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
