package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(h.recoverMiddleware)
	r.Use(h.loggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/", h.Home)

	r.Route("/project/{id}", func(r chi.Router) {
		r.Get("/", h.Project)
		r.Post("/join", h.JoinProject)
		r.Post("/refresh", h.RefreshProject)
		r.Post("/members/{memberId}/remove", h.RemoveMember)
	})
	// Без id страница в состоянии "проект не найден"
	r.Get("/project", h.Project)
	r.Get("/project/", h.Project)

	return r
}
