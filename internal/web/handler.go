// Package web отдает страницы ростера
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/bagdasarian/project-roster/internal/logger"
	"github.com/bagdasarian/project-roster/internal/roster"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Roster - модель страницы, которую рисуют обработчики
type Roster interface {
	Load(ctx context.Context, projectID int, query, session string) (*roster.Page, error)
	Remove(ctx context.Context, projectID, memberID int, session string) error
	Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error)
	Refresh(ctx context.Context, projectID int) error
	Projects(ctx context.Context) ([]domain.ProjectSummary, error)
}

type Handler struct {
	roster     Roster
	cookieName string
	log        *logger.Logger
	pages      map[string]*template.Template
}

func NewHandler(r Roster, cookieName string, log *logger.Logger) *Handler {
	return &Handler{
		roster:     r,
		cookieName: cookieName,
		log:        log,
		pages: map[string]*template.Template{
			"home":    parsePage("home.html"),
			"project": parsePage("project.html"),
			"error":   parsePage("error.html"),
		},
	}
}

func parsePage(name string) *template.Template {
	return template.Must(template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

// Сообщения выбираются по коду из query: текст из запроса на страницу не попадает
var notices = map[string]string{
	"removed":   "Member removed.",
	"joined":    "You joined the team.",
	"refreshed": "Roster refreshed.",
}

var errorMessages = map[string]string{
	"forbidden":    "You can only remove yourself unless you are an admin.",
	"not_found":    "That member is no longer on this team.",
	"unauthorized": "Sign in to change the roster.",
	"invalid":      "Enter your name and a WhatsApp number.",
	"failed":       "Something went wrong. Try again.",
}

type homeData struct {
	Projects []domain.ProjectSummary
}

type projectData struct {
	*roster.Page
	ShowJoin bool
	Notice   string
	Error    string
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	projects, err := h.roster.Projects(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "home", homeData{Projects: projects})
}

func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	projectID := roster.ParseProjectID(chi.URLParam(r, "id"))
	query := r.URL.Query()

	page, err := h.roster.Load(r.Context(), projectID, query.Get("q"), h.session(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := projectData{
		Page:     page,
		ShowJoin: query.Get("join") == "1",
		Notice:   notices[query.Get("notice")],
		Error:    errorMessages[query.Get("error")],
	}

	status := http.StatusOK
	if page.Status == roster.StatusNotFound {
		status = http.StatusNotFound
	}
	h.render(w, r, status, "project", data)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	projectID := roster.ParseProjectID(chi.URLParam(r, "id"))
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberId"))
	if projectID == 0 || err != nil || memberID <= 0 {
		http.NotFound(w, r)
		return
	}

	back := url.Values{}
	if q := strings.TrimSpace(r.PostFormValue("q")); q != "" {
		back.Set("q", q)
	}

	if err := h.roster.Remove(r.Context(), projectID, memberID, h.session(r)); err != nil {
		back.Set("error", h.errorCode(r, err))
	} else {
		back.Set("notice", "removed")
	}
	h.redirect(w, r, projectID, back)
}

func (h *Handler) JoinProject(w http.ResponseWriter, r *http.Request) {
	projectID := roster.ParseProjectID(chi.URLParam(r, "id"))
	if projectID == 0 {
		http.NotFound(w, r)
		return
	}

	req := domain.JoinRequest{
		Name:           strings.TrimSpace(r.PostFormValue("name")),
		WhatsappNumber: strings.TrimSpace(r.PostFormValue("whatsappNumber")),
		SectionNumber:  strings.TrimSpace(r.PostFormValue("sectionNumber")),
		PhotoURL:       strings.TrimSpace(r.PostFormValue("photoUrl")),
	}

	back := url.Values{}
	if _, err := h.roster.Join(r.Context(), projectID, req, h.session(r)); err != nil {
		back.Set("error", h.errorCode(r, err))
		back.Set("join", "1")
	} else {
		back.Set("notice", "joined")
	}
	h.redirect(w, r, projectID, back)
}

func (h *Handler) RefreshProject(w http.ResponseWriter, r *http.Request) {
	projectID := roster.ParseProjectID(chi.URLParam(r, "id"))
	if projectID == 0 {
		http.NotFound(w, r)
		return
	}

	back := url.Values{}
	if err := h.roster.Refresh(r.Context(), projectID); err != nil {
		h.log.Warnw("refresh failed", "project_id", projectID, "error", err)
		back.Set("error", "failed")
	} else {
		back.Set("notice", "refreshed")
	}
	h.redirect(w, r, projectID, back)
}

func (h *Handler) session(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, projectID int, query url.Values) {
	target := fmt.Sprintf("/project/%d", projectID)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) errorCode(r *http.Request, err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrBadRequest):
		return "invalid"
	}

	h.log.Errorw("roster action failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", requestIDFromContext(r.Context()),
		"error", err,
	)
	return "failed"
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Errorw("page failed",
		"path", r.URL.Path,
		"request_id", requestIDFromContext(r.Context()),
		"error", err,
	)
	h.render(w, r, http.StatusBadGateway, "error", nil)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages[page].Execute(w, data); err != nil {
		h.log.Errorw("template failed", "page", page, "request_id", requestIDFromContext(r.Context()), "error", err)
	}
}
