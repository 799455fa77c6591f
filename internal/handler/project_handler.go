package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/project-roster/internal/domain"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectSummariesToHTTP(projects))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project))
}

// CreateProject доступен только администраторам
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFromContext(r.Context())
	if !viewer.Authenticated() {
		h.handleError(w, r, domain.ErrUnauthorized)
		return
	}
	if !viewer.IsAdmin {
		h.handleError(w, r, &domain.DomainError{
			Code:    domain.CodeForbidden,
			Message: "only admins may create projects",
		})
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, domain.NewBadRequestError("invalid json body"))
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), req.Name, req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.Infow("project created", "project_id", project.ID, "user_id", viewer.UserID)
	writeJSON(w, http.StatusCreated, domainProjectToHTTP(project))
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, domain.NewBadRequestError(name + " must be an integer")
	}
	return id, nil
}
