package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateProject(t *testing.T) {
	t.Run("успешное создание проекта", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		mockProjectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Name == "Capstone" && p.Description == "Final year"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Project).ID = 5
		}).Return(nil).Once()

		project, err := service.CreateProject(context.Background(), "  Capstone ", "Final year")

		require.NoError(t, err)
		assert.Equal(t, 5, project.ID)
		assert.Equal(t, "Capstone", project.Name)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		project, err := service.CreateProject(context.Background(), "   ", "")

		require.Error(t, err)
		assert.Nil(t, project)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		mockProjectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: проект уже существует", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		mockProjectRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("project already exists")).Once()

		project, err := service.CreateProject(context.Background(), "Capstone", "")

		assert.Nil(t, project)
		assert.True(t, errors.Is(err, domain.ErrProjectExists))
	})
}

func TestProjectService_GetProject(t *testing.T) {
	t.Run("успешное получение проекта", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		mockProjectRepo.On("GetByID", mock.Anything, 5).Return(&domain.Project{ID: 5, Name: "Capstone"}, nil).Once()

		project, err := service.GetProject(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "Capstone", project.Name)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("ошибка: проект не найден", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		mockProjectRepo.On("GetByID", mock.Anything, 42).Return(nil, errors.New("project not found")).Once()

		project, err := service.GetProject(context.Background(), 42)

		require.Error(t, err)
		assert.Nil(t, project)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("нулевой идентификатор не доходит до базы", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		project, err := service.GetProject(context.Background(), 0)

		require.Error(t, err)
		assert.Nil(t, project)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		mockProjectRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка базы данных пробрасывается", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		service := NewProjectService(mockProjectRepo)

		mockProjectRepo.On("GetByID", mock.Anything, 5).Return(nil, errors.New("connection refused")).Once()

		_, err := service.GetProject(context.Background(), 5)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestProjectService_ListProjects(t *testing.T) {
	mockProjectRepo := new(MockProjectRepository)
	service := NewProjectService(mockProjectRepo)

	summaries := []*domain.ProjectSummary{
		{Project: domain.Project{ID: 5, Name: "Capstone"}, MemberCount: 2},
	}
	mockProjectRepo.On("List", mock.Anything).Return(summaries, nil).Once()

	result, err := service.ListProjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, summaries, result)
	mockProjectRepo.AssertExpectations(t)
}
