package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (project_id, name, whatsapp_number, section_number, user_id, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.ProjectID,
		member.Name,
		member.WhatsappNumber,
		nullString(member.SectionNumber),
		member.UserID,
		nullString(member.PhotoURL),
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int) (*domain.TeamMember, error) {
	query := `
		SELECT id, project_id, name, whatsapp_number, section_number, user_id, photo_url, created_at
		FROM team_members
		WHERE id = $1
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("member not found")
		}
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) GetByProjectID(ctx context.Context, projectID int) ([]*domain.TeamMember, error) {
	query := `
		SELECT id, project_id, name, whatsapp_number, section_number, user_id, photo_url, created_at
		FROM team_members
		WHERE project_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.executor.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM team_members
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("member not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.TeamMember, error) {
	member := &domain.TeamMember{}
	var sectionNumber, photoURL sql.NullString
	err := row.Scan(
		&member.ID,
		&member.ProjectID,
		&member.Name,
		&member.WhatsappNumber,
		&sectionNumber,
		&member.UserID,
		&photoURL,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.SectionNumber = sectionNumber.String
	member.PhotoURL = photoURL.String

	return member, nil
}
