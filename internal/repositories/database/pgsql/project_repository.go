package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	"github.com/wfms/workforce_mgmt_app/internal/models"
	"github.com/wfms/workforce_mgmt_app/internal/utils/mapping"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, description, start_date, end_date, budget, status, created_at, last_updated_at`

// sortableProjectColumns guards the ORDER BY clause of the department
// listing. The service layer validates caller input against its own
// allow-list; this second check keeps the repository safe on its own.
var sortableProjectColumns = map[string]struct{}{
	"budget":     {},
	"end_date":   {},
	"name":       {},
	"start_date": {},
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var model models.Project
	err := row.Scan(
		&model.ProjectID,
		&model.Name,
		&model.Description,
		&model.StartDate,
		&model.EndDate,
		&model.Budget,
		&model.Status,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project := mapping.ToDomainProject(model)
	return &project, nil
}

func (r *PgxProjectRepository) collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project row", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}
	return projects, nil
}

// SaveProject inserts a new project and returns it with the store-assigned
// identifier.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	model := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (name, description, start_date, end_date, budget, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING project_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		model.Name,
		model.Description,
		model.StartDate,
		model.EndDate,
		model.Budget,
		model.Status,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ProjectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save project", err)
	}

	saved := mapping.ToDomainProject(model)
	return &saved, nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	project, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, projectID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find project %d", projectID), err)
	}
	return project, nil
}

// ListProjects retrieves all projects.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY project_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	return r.collectProjects(rows)
}

// FindActiveProjectsByDepartmentID retrieves the department's projects with
// status 'Active', ordered ascending by the given column. The column must be
// allow-listed; caller-supplied sort text never reaches the query directly.
func (r *PgxProjectRepository) FindActiveProjectsByDepartmentID(ctx context.Context, departmentID int64, orderBy string) ([]domain.Project, error) {
	if _, ok := sortableProjectColumns[orderBy]; !ok {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unsortable project column %q", orderBy))
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT p.project_id, p.name, p.description, p.start_date, p.end_date, p.budget, p.status, p.created_at, p.last_updated_at
		FROM projects p
		INNER JOIN project_department pd ON p.project_id = pd.project_id
		WHERE pd.department_id = $1 AND p.status = 'Active'
		ORDER BY p.%s;
	`, orderBy)

	rows, err := r.Pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query projects of department %d", departmentID), err)
	}
	return r.collectProjects(rows)
}

// FindProjectsEndingBy retrieves projects whose end date falls on or before
// the deadline.
func (r *PgxProjectRepository) FindProjectsEndingBy(ctx context.Context, deadline time.Time) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE end_date <= $1;`
	rows, err := r.Pool.Query(ctx, query, deadline)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects by end date", err)
	}
	return r.collectProjects(rows)
}

// UpdateProject updates an existing project's details.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) (bool, error) {
	model := mapping.ToModelProject(project)
	query := `
		UPDATE projects
		SET name = $1, description = $2, start_date = $3, end_date = $4, budget = $5, status = $6, last_updated_at = $7
		WHERE project_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Description,
		model.StartDate,
		model.EndDate,
		model.Budget,
		model.Status,
		model.LastUpdatedAt,
		model.ProjectID,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to update project %d", model.ProjectID), err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteProject removes a project.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to delete project %d", projectID), err)
	}
	return tag.RowsAffected() > 0, nil
}
