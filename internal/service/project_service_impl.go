package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/bagdasarian/project-roster/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService создает новый экземпляр ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("project name is required")
	}

	project := &domain.Project{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		if err.Error() == "project already exists" {
			return nil, domain.ErrProjectExists
		}
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	if id <= 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("project with id %d", id))
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "project not found" {
			return nil, domain.NewNotFoundError(fmt.Sprintf("project with id %d", id))
		}
		return nil, err
	}

	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]*domain.ProjectSummary, error) {
	return s.projectRepo.List(ctx)
}
