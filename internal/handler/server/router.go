package server

import (
	"net/http"

	"github.com/bagdasarian/project-roster/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("POST /api/projects", h.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.HandleFunc("GET /api/projects/{id}/members", h.ListMembers)
	mux.HandleFunc("POST /api/projects/{id}/members", h.JoinProject)
	mux.HandleFunc("DELETE /api/members/{id}", h.RemoveMember)
	mux.HandleFunc("GET /api/admin/status", h.AdminStatus)
}

// NewRouter собирает маршруты и middleware API
func NewRouter(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return h.RequestID(h.AccessLog(h.Session(mux)))
}
