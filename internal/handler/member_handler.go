package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/project-roster/internal/domain"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	members, err := h.memberService.ListMembers(r.Context(), projectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) JoinProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, domain.NewBadRequestError("invalid json body"))
		return
	}

	viewer := viewerFromContext(r.Context())
	member, err := h.memberService.Join(r.Context(), viewer, projectID, httpJoinToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.Infow("member joined",
		"project_id", projectID,
		"member_id", member.ID,
		"user_id", viewer.UserID,
	)
	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	viewer := viewerFromContext(r.Context())
	if err := h.memberService.Remove(r.Context(), viewer, memberID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.Infow("member removed",
		"member_id", memberID,
		"user_id", viewer.UserID,
		"admin", viewer.IsAdmin,
	)
	w.WriteHeader(http.StatusNoContent)
}
