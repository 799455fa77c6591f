package handler

import (
	"time"

	"github.com/bagdasarian/project-roster/internal/domain"
)

func domainProjectToHTTP(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}
}

func domainProjectSummariesToHTTP(projects []*domain.ProjectSummary) []ProjectSummaryResponse {
	result := make([]ProjectSummaryResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, ProjectSummaryResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			MemberCount: p.MemberCount,
		})
	}
	return result
}

func domainMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	var createdAt string
	if !member.CreatedAt.IsZero() {
		createdAt = member.CreatedAt.Format(time.RFC3339)
	}

	return TeamMemberResponse{
		ID:             member.ID,
		ProjectID:      member.ProjectID,
		Name:           member.Name,
		WhatsappNumber: member.WhatsappNumber,
		SectionNumber:  member.SectionNumber,
		UserID:         member.UserID,
		PhotoURL:       member.PhotoURL,
		CreatedAt:      createdAt,
	}
}

func domainMembersToHTTP(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func httpJoinToDomain(req JoinRequest) domain.JoinRequest {
	return domain.JoinRequest{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
		SectionNumber:  req.SectionNumber,
		PhotoURL:       req.PhotoURL,
	}
}
