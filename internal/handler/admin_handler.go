package handler

import "net/http"

func (h *Handler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFromContext(r.Context())

	writeJSON(w, http.StatusOK, AdminStatusResponse{
		IsAdmin: viewer.IsAdmin,
		UserID:  viewer.UserID,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
