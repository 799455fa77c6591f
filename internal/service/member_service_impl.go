package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/bagdasarian/project-roster/internal/repository"
)

type memberService struct {
	memberRepo  repository.MemberRepository
	projectRepo repository.ProjectRepository
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(memberRepo repository.MemberRepository, projectRepo repository.ProjectRepository) MemberService {
	return &memberService{
		memberRepo:  memberRepo,
		projectRepo: projectRepo,
	}
}

func (s *memberService) ListMembers(ctx context.Context, projectID int) ([]*domain.TeamMember, error) {
	if projectID <= 0 {
		return []*domain.TeamMember{}, nil
	}

	return s.memberRepo.GetByProjectID(ctx, projectID)
}

func (s *memberService) Join(ctx context.Context, viewer domain.AdminStatus, projectID int, req domain.JoinRequest) (*domain.TeamMember, error) {
	if !viewer.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	if err := validateJoinRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if err.Error() == "project not found" {
			return nil, domain.NewNotFoundError(fmt.Sprintf("project with id %d", projectID))
		}
		return nil, err
	}

	member := &domain.TeamMember{
		ProjectID:      projectID,
		Name:           strings.TrimSpace(req.Name),
		WhatsappNumber: strings.TrimSpace(req.WhatsappNumber),
		SectionNumber:  strings.TrimSpace(req.SectionNumber),
		UserID:         viewer.UserID,
		PhotoURL:       strings.TrimSpace(req.PhotoURL),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *memberService) Remove(ctx context.Context, viewer domain.AdminStatus, memberID int) error {
	if !viewer.Authenticated() {
		return domain.ErrUnauthorized
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if err.Error() == "member not found" {
			return domain.NewNotFoundError(fmt.Sprintf("member with id %d", memberID))
		}
		return err
	}

	if !viewer.CanRemove(*member) {
		return domain.ErrForbidden
	}

	err = s.memberRepo.Delete(ctx, memberID)
	if err != nil {
		if err.Error() == "member not found" {
			return domain.NewNotFoundError(fmt.Sprintf("member with id %d", memberID))
		}
		return err
	}

	return nil
}

func validateJoinRequest(req domain.JoinRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewBadRequestError("name is required")
	}
	if !strings.ContainsFunc(req.WhatsappNumber, unicode.IsDigit) {
		return domain.NewBadRequestError("whatsapp number must contain digits")
	}
	return nil
}
