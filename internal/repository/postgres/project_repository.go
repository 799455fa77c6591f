package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/project-roster/internal/domain"
)

type projectRepository struct {
	executor DBExecutor
}

func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{executor: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		project.Name,
		nullString(project.Description),
		time.Now(),
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("project already exists")
		}
		return err
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	query := `
		SELECT id, name, description, created_at
		FROM projects
		WHERE id = $1
	`

	project := &domain.Project{}
	var description sql.NullString
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&description,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("project not found")
		}
		return nil, err
	}
	project.Description = description.String

	return project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.ProjectSummary, error) {
	query := `
		SELECT p.id, p.name, p.description, p.created_at, COUNT(m.id) AS member_count
		FROM projects p
		LEFT JOIN team_members m ON m.project_id = p.id
		GROUP BY p.id, p.name, p.description, p.created_at
		ORDER BY p.name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.ProjectSummary, 0)
	for rows.Next() {
		summary := &domain.ProjectSummary{}
		var description sql.NullString
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&description,
			&summary.CreatedAt,
			&summary.MemberCount,
		)
		if err != nil {
			return nil, err
		}
		summary.Description = description.String
		projects = append(projects, summary)
	}

	return projects, rows.Err()
}
