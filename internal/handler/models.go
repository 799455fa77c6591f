package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProjectResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProjectSummaryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"memberCount"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamMemberResponse struct {
	ID             int    `json:"id"`
	ProjectID      int    `json:"projectId"`
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	SectionNumber  string `json:"sectionNumber,omitempty"`
	UserID         string `json:"userId"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

type JoinRequest struct {
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	SectionNumber  string `json:"sectionNumber"`
	PhotoURL       string `json:"photoUrl"`
}

type AdminStatusResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	UserID  string `json:"userId"`
}
