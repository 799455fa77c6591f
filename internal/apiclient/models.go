package apiclient

import "github.com/bagdasarian/project-roster/internal/domain"

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type projectDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
}

type memberDTO struct {
	ID             int    `json:"id"`
	ProjectID      int    `json:"projectId"`
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	SectionNumber  string `json:"sectionNumber,omitempty"`
	UserID         string `json:"userId"`
	PhotoURL       string `json:"photoUrl,omitempty"`
}

type joinDTO struct {
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	SectionNumber  string `json:"sectionNumber,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
}

type adminStatusDTO struct {
	IsAdmin bool   `json:"isAdmin"`
	UserID  string `json:"userId"`
}

func (p projectDTO) toDomain() domain.Project {
	return domain.Project{ID: p.ID, Name: p.Name, Description: p.Description}
}

func (m memberDTO) toDomain() domain.TeamMember {
	return domain.TeamMember{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Name:           m.Name,
		WhatsappNumber: m.WhatsappNumber,
		SectionNumber:  m.SectionNumber,
		UserID:         m.UserID,
		PhotoURL:       m.PhotoURL,
	}
}
