// Package roster собирает страницу команды проекта: список участников, поиск
// по имени, ссылки для связи, вступление и удаление.
package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bagdasarian/project-roster/internal/apiclient"
	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/bagdasarian/project-roster/internal/logger"
	"github.com/bagdasarian/project-roster/internal/querycache"
)

// Backend - REST API, через который ростер читает и меняет данные
type Backend interface {
	ListProjects(ctx context.Context) ([]domain.ProjectSummary, error)
	GetProject(ctx context.Context, id int) (*domain.Project, error)
	ListMembers(ctx context.Context, projectID int) ([]domain.TeamMember, error)
	AdminStatus(ctx context.Context, session string) (domain.AdminStatus, error)
	Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error)
	RemoveMember(ctx context.Context, memberID int, session string) error
}

// Cache - общий кэш запросов с ключом по пути запроса
type Cache interface {
	querycache.Doer
	Invalidate(ctx context.Context, keys ...string) error
}

// Features включает необязательные части страницы.
// Без AdminControls посетитель никогда не считается администратором.
type Features struct {
	Search        bool
	AdminControls bool
}

type Status int

const (
	StatusLoading Status = iota
	StatusNotFound
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusNotFound:
		return "not_found"
	case StatusLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type Row struct {
	domain.TeamMember
	ContactLink string
	CanRemove   bool
}

type Page struct {
	Status    Status
	ProjectID int
	Project   *domain.Project
	Rows      []Row
	// Total - число участников до фильтрации поиском
	Total int
	// MembersPending - список участников не пришел к сроку загрузки
	MembersPending bool
	Query          string
	Viewer         domain.AdminStatus
	Features       Features
}

type View struct {
	backend     Backend
	cache       Cache
	features    Features
	loadTimeout time.Duration
	log         *logger.Logger
}

func NewView(backend Backend, cache Cache, features Features, loadTimeout time.Duration, log *logger.Logger) *View {
	return &View{
		backend:     backend,
		cache:       cache,
		features:    features,
		loadTimeout: loadTimeout,
		log:         log,
	}
}

func (v *View) Features() Features {
	return v.features
}

// Load параллельно загружает проект, участников и статус посетителя.
// Проект с id 0 не найден без обращения к бэкенду. Если проект не пришел к сроку,
// страница в состоянии StatusLoading, а запрос продолжает работать и заполняет
// кэш для следующего рендера.
func (v *View) Load(ctx context.Context, projectID int, query, session string) (*Page, error) {
	page := &Page{
		Status:    StatusLoading,
		ProjectID: projectID,
		Features:  v.features,
		Viewer:    domain.Anonymous,
	}
	if v.features.Search {
		page.Query = query
	}

	if projectID == 0 {
		page.Status = StatusNotFound
		return page, nil
	}

	ctx, cancel := context.WithTimeout(ctx, v.loadTimeout)
	defer cancel()

	var (
		project    *domain.Project
		projectErr error
		members    []domain.TeamMember
		viewer     = domain.Anonymous
	)

	var g errgroup.Group
	g.Go(func() error {
		project, projectErr = v.project(ctx, projectID)
		if projectErr != nil && !errors.Is(projectErr, domain.ErrNotFound) && !isTimeout(projectErr) {
			return fmt.Errorf("load project %d: %w", projectID, projectErr)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		members, err = v.members(ctx, projectID)
		if err != nil {
			if isTimeout(err) {
				page.MembersPending = true
			} else {
				v.log.Warnw("member list unavailable", "project_id", projectID, "error", err)
			}
			members = nil
		}
		return nil
	})
	g.Go(func() error {
		viewer = v.viewer(ctx, session)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case errors.Is(projectErr, domain.ErrNotFound):
		page.Status = StatusNotFound
		return page, nil
	case projectErr != nil:
		return page, nil
	}

	page.Status = StatusLoaded
	page.Project = project
	page.Viewer = viewer
	page.Total = len(members)

	visible := members
	if v.features.Search {
		visible = FilterMembers(members, query)
	}
	page.Rows = make([]Row, 0, len(visible))
	for _, member := range visible {
		page.Rows = append(page.Rows, Row{
			TeamMember:  member,
			ContactLink: ContactLink(member.WhatsappNumber),
			CanRemove:   CanRemove(viewer, member),
		})
	}

	return page, nil
}

// Remove удаляет участника на бэкенде, если посетителю это разрешено, и
// сбрасывает кэш списка, чтобы следующий рендер показал состояние сервера.
func (v *View) Remove(ctx context.Context, projectID, memberID int, session string) error {
	viewer := v.viewer(ctx, session)
	if !viewer.Authenticated() {
		return domain.ErrUnauthorized
	}

	members, err := v.members(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load members of project %d: %w", projectID, err)
	}

	var target *domain.TeamMember
	for i := range members {
		if members[i].ID == memberID {
			target = &members[i]
			break
		}
	}
	if target == nil {
		return domain.NewNotFoundError(fmt.Sprintf("member with id %d", memberID))
	}
	if !CanRemove(viewer, *target) {
		return domain.ErrForbidden
	}

	err = v.backend.RemoveMember(ctx, memberID, session)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		v.invalidate(ctx, apiclient.MembersPath(projectID), apiclient.ProjectsPath())
	}
	if err != nil {
		return err
	}

	v.log.Infow("member removed", "project_id", projectID, "member_id", memberID, "user_id", viewer.UserID)
	return nil
}

// Join добавляет посетителя в команду проекта
func (v *View) Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error) {
	member, err := v.backend.Join(ctx, projectID, req, session)
	if err != nil {
		return nil, err
	}

	v.invalidate(ctx, apiclient.MembersPath(projectID), apiclient.ProjectsPath())
	v.log.Infow("member joined", "project_id", projectID, "member_id", member.ID)
	return member, nil
}

// Refresh сбрасывает все, что закэшировано для проекта
func (v *View) Refresh(ctx context.Context, projectID int) error {
	return v.cache.Invalidate(ctx, apiclient.ProjectPath(projectID), apiclient.MembersPath(projectID), apiclient.ProjectsPath())
}

func (v *View) Projects(ctx context.Context) ([]domain.ProjectSummary, error) {
	return querycache.Fetch(ctx, v.cache, apiclient.ProjectsPath(), v.backend.ListProjects)
}

func (v *View) project(ctx context.Context, projectID int) (*domain.Project, error) {
	return querycache.Fetch(ctx, v.cache, apiclient.ProjectPath(projectID), func(ctx context.Context) (*domain.Project, error) {
		return v.backend.GetProject(ctx, projectID)
	})
}

func (v *View) members(ctx context.Context, projectID int) ([]domain.TeamMember, error) {
	return querycache.Fetch(ctx, v.cache, apiclient.MembersPath(projectID), func(ctx context.Context) ([]domain.TeamMember, error) {
		return v.backend.ListMembers(ctx, projectID)
	})
}

// viewer запрашивается на каждый запрос и не кэшируется. При ошибке посетитель анонимный.
func (v *View) viewer(ctx context.Context, session string) domain.AdminStatus {
	if session == "" {
		return domain.Anonymous
	}

	status, err := v.backend.AdminStatus(ctx, session)
	if err != nil {
		v.log.Warnw("admin status unavailable", "error", err)
		return domain.Anonymous
	}
	if !v.features.AdminControls {
		status.IsAdmin = false
	}
	return status
}

func (v *View) invalidate(ctx context.Context, keys ...string) {
	if err := v.cache.Invalidate(ctx, keys...); err != nil {
		v.log.Warnw("query cache invalidation failed", "keys", keys, "error", err)
	}
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
