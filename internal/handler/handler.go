package handler

import (
	"github.com/bagdasarian/project-roster/internal/logger"
	"github.com/bagdasarian/project-roster/internal/service"
	"github.com/bagdasarian/project-roster/internal/session"
)

type Handler struct {
	projectService service.ProjectService
	memberService  service.MemberService
	sessions       *session.Verifier
	log            *logger.Logger
}

func NewHandler(
	projectService service.ProjectService,
	memberService service.MemberService,
	sessions *session.Verifier,
	log *logger.Logger,
) *Handler {
	return &Handler{
		projectService: projectService,
		memberService:  memberService,
		sessions:       sessions,
		log:            log,
	}
}
