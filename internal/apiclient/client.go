// Package apiclient - клиент REST API ростера
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	cookieName string
}

func New(baseURL string, httpClient *http.Client, cookieName string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cookieName: cookieName,
	}
}

func ProjectsPath() string {
	return "/api/projects"
}

func ProjectPath(id int) string {
	return fmt.Sprintf("/api/projects/%d", id)
}

func MembersPath(projectID int) string {
	return fmt.Sprintf("/api/projects/%d/members", projectID)
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	var dtos []projectDTO
	if err := c.do(ctx, http.MethodGet, ProjectsPath(), "", nil, &dtos); err != nil {
		return nil, err
	}

	projects := make([]domain.ProjectSummary, 0, len(dtos))
	for _, dto := range dtos {
		projects = append(projects, domain.ProjectSummary{Project: dto.toDomain(), MemberCount: dto.MemberCount})
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	var dto projectDTO
	if err := c.do(ctx, http.MethodGet, ProjectPath(id), "", nil, &dto); err != nil {
		return nil, err
	}

	project := dto.toDomain()
	return &project, nil
}

func (c *Client) ListMembers(ctx context.Context, projectID int) ([]domain.TeamMember, error) {
	var dtos []memberDTO
	if err := c.do(ctx, http.MethodGet, MembersPath(projectID), "", nil, &dtos); err != nil {
		return nil, err
	}

	members := make([]domain.TeamMember, 0, len(dtos))
	for _, dto := range dtos {
		members = append(members, dto.toDomain())
	}
	return members, nil
}

func (c *Client) AdminStatus(ctx context.Context, session string) (domain.AdminStatus, error) {
	var dto adminStatusDTO
	if err := c.do(ctx, http.MethodGet, "/api/admin/status", session, nil, &dto); err != nil {
		return domain.Anonymous, err
	}

	return domain.AdminStatus{IsAdmin: dto.IsAdmin, UserID: dto.UserID}, nil
}

func (c *Client) Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error) {
	body := joinDTO{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
		SectionNumber:  req.SectionNumber,
		PhotoURL:       req.PhotoURL,
	}

	var dto memberDTO
	if err := c.do(ctx, http.MethodPost, MembersPath(projectID), session, body, &dto); err != nil {
		return nil, err
	}

	member := dto.toDomain()
	return &member, nil
}

func (c *Client) RemoveMember(ctx context.Context, memberID int, session string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/members/%d", memberID), session, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, session string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: session})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError разбирает конверт ошибки API; без него код берется из HTTP-статуса
func decodeError(resp *http.Response) error {
	var envelope errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		return &domain.DomainError{Code: envelope.Error.Code, Message: envelope.Error.Message}
	}

	code := domain.CodeInternal
	switch resp.StatusCode {
	case http.StatusNotFound:
		code = domain.CodeNotFound
	case http.StatusUnauthorized:
		code = domain.CodeUnauthorized
	case http.StatusForbidden:
		code = domain.CodeForbidden
	case http.StatusBadRequest:
		code = domain.CodeBadRequest
	}
	return &domain.DomainError{
		Code:    code,
		Message: fmt.Sprintf("%s %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.Status),
	}
}
