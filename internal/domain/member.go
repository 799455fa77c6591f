package domain

import "time"

type TeamMember struct {
	ID             int
	ProjectID      int
	Name           string
	WhatsappNumber string
	SectionNumber  string
	UserID         string
	PhotoURL       string
	CreatedAt      time.Time
}

// JoinRequest - данные формы вступления в команду проекта
type JoinRequest struct {
	Name           string
	WhatsappNumber string
	SectionNumber  string
	PhotoURL       string
}
