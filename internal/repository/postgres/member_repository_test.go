package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/project-roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumns = []string{
	"id", "project_id", "name", "whatsapp_number", "section_number", "user_id", "photo_url", "created_at",
}

func setupMemberRepo(t *testing.T) (*memberRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMemberRepository(db), mock
}

func TestMemberRepository_Create(t *testing.T) {
	t.Run("успешное добавление участника", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO team_members").
			WithArgs(5, "Alice Smith", "+1 (555) 010-0001", "3", "u1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		member := &domain.TeamMember{
			ProjectID:      5,
			Name:           "Alice Smith",
			WhatsappNumber: "+1 (555) 010-0001",
			SectionNumber:  "3",
			UserID:         "u1",
		}
		err := repo.Create(context.Background(), member)

		require.NoError(t, err)
		assert.Equal(t, 1, member.ID)
		assert.Equal(t, now, member.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка внешнего ключа", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("INSERT INTO team_members").
			WillReturnError(errors.New("foreign key violation"))

		err := repo.Create(context.Background(), &domain.TeamMember{ProjectID: 99, Name: "Bob"})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_GetByID(t *testing.T) {
	t.Run("участник найден", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT (.+) FROM team_members WHERE id = \\$1").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(memberColumns).
				AddRow(2, 5, "Bob Jones", "555.010.0002", nil, "u2", "https://example.com/bob.png", now))

		member, err := repo.GetByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, 2, member.ID)
		assert.Equal(t, 5, member.ProjectID)
		assert.Equal(t, "u2", member.UserID)
		assert.Empty(t, member.SectionNumber)
		assert.Equal(t, "https://example.com/bob.png", member.PhotoURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник не найден", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM team_members WHERE id = \\$1").
			WithArgs(7).
			WillReturnError(sql.ErrNoRows)

		member, err := repo.GetByID(context.Background(), 7)

		require.Error(t, err)
		assert.Nil(t, member)
		assert.Equal(t, "member not found", err.Error())
	})
}

func TestMemberRepository_GetByProjectID(t *testing.T) {
	t.Run("участники в порядке вступления", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT (.+) FROM team_members WHERE project_id = \\$1 ORDER BY created_at, id").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(memberColumns).
				AddRow(1, 5, "Alice Smith", "+1 (555) 010-0001", "3", "u1", nil, now).
				AddRow(2, 5, "Bob Jones", "555.010.0002", nil, "u2", nil, now.Add(time.Minute)))

		members, err := repo.GetByProjectID(context.Background(), 5)

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Alice Smith", members[0].Name)
		assert.Equal(t, "3", members[0].SectionNumber)
		assert.Equal(t, "Bob Jones", members[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("у проекта нет участников", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM team_members WHERE project_id").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(memberColumns))

		members, err := repo.GetByProjectID(context.Background(), 5)

		require.NoError(t, err)
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("ошибка сканирования", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM team_members WHERE project_id").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		members, err := repo.GetByProjectID(context.Background(), 5)

		require.Error(t, err)
		assert.Nil(t, members)
	})
}

func TestMemberRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectExec("DELETE FROM team_members").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник уже удален", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectExec("DELETE FROM team_members").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 1)

		require.Error(t, err)
		assert.Equal(t, "member not found", err.Error())
	})

	t.Run("удаление в транзакции", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM team_members").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		err = NewMemberRepositoryWithTx(tx).Delete(context.Background(), 3)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
