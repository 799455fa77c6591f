package web

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/bagdasarian/project-roster/internal/roster"
)

type mockRoster struct {
	mock.Mock
}

func (m *mockRoster) Load(ctx context.Context, projectID int, query, session string) (*roster.Page, error) {
	args := m.Called(ctx, projectID, query, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Page), args.Error(1)
}

func (m *mockRoster) Remove(ctx context.Context, projectID, memberID int, session string) error {
	args := m.Called(ctx, projectID, memberID, session)
	return args.Error(0)
}

func (m *mockRoster) Join(ctx context.Context, projectID int, req domain.JoinRequest, session string) (*domain.TeamMember, error) {
	args := m.Called(ctx, projectID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *mockRoster) Refresh(ctx context.Context, projectID int) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockRoster) Projects(ctx context.Context) ([]domain.ProjectSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectSummary), args.Error(1)
}
