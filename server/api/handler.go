package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/galvamailru/chandra/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/", h.handleIndex)

	r.Group(func(r chi.Router) {
		r.Use(h.authorize)

		r.Post("/parse", h.handleParse)
	})
}

func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		for _, p := range h.Authorizers {
			if ctx, err := p.Authenticate(r.Context(), r); err == nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		writeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(errorResponse{Error: text})
}
