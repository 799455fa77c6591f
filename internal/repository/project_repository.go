package repository

import (
	"context"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.ProjectSummary, error)
}
