package service

import (
	"context"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type ProjectService interface {
	// CreateProject создает проект
	CreateProject(ctx context.Context, name, description string) (*domain.Project, error)

	// GetProject получает проект по идентификатору
	GetProject(ctx context.Context, id int) (*domain.Project, error)

	// ListProjects получает все проекты с количеством участников
	ListProjects(ctx context.Context) ([]*domain.ProjectSummary, error)
}
