package api

import (
	"net/http"
)

func NewRouter(h *APIHandler) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("POST /extract", h.HandleExtract)

	mux.HandleFunc("GET /healthz", h.HandleHealth)

	return mux
}
