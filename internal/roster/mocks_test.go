package roster

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) ListProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectSummary), args.Error(1)
}

func (m *mockBackend) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockBackend) ListMembers(ctx context.Context, projectID int) ([]domain.TeamMember, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *mockBackend) AdminStatus(ctx context.Context, session string) (domain.AdminStatus, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.AdminStatus), args.Error(1)
}

func (m *mockBackend) Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error) {
	args := m.Called(ctx, projectID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *mockBackend) RemoveMember(ctx context.Context, memberID int, session string) error {
	args := m.Called(ctx, memberID, session)
	return args.Error(0)
}
