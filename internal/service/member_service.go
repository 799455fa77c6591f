package service

import (
	"context"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type MemberService interface {
	// ListMembers получает участников проекта в порядке вступления
	ListMembers(ctx context.Context, projectID int) ([]*domain.TeamMember, error)

	// Join добавляет посетителя в команду проекта
	Join(ctx context.Context, viewer domain.AdminStatus, projectID int, req domain.JoinRequest) (*domain.TeamMember, error)

	// Remove удаляет участника, если посетитель - администратор или сам участник
	Remove(ctx context.Context, viewer domain.AdminStatus, memberID int) error
}
