package repository

import (
	"context"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id int) (*domain.TeamMember, error)
	GetByProjectID(ctx context.Context, projectID int) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, id int) error
}
