package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	"github.com/wfms/workforce_mgmt_app/internal/models"
	"github.com/wfms/workforce_mgmt_app/internal/utils/mapping"
)

type PgxAssignmentRepository struct {
	BaseRepository
}

// newPgxAssignmentRepository creates a new repository for employee-project
// assignment data.
func newPgxAssignmentRepository(pool *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `employee_id, project_id, allocation_percent, created_at, last_updated_at`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var model models.Assignment
	err := row.Scan(
		&model.EmployeeID,
		&model.ProjectID,
		&model.AllocationPercent,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	assignment := mapping.ToDomainAssignment(model)
	return &assignment, nil
}

// SaveAssignment persists a new (employee, project) pairing.
func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	model := mapping.ToModelAssignment(assignment)
	query := `
		INSERT INTO employee_project (employee_id, project_id, allocation_percent, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.EmployeeID,
		model.ProjectID,
		model.AllocationPercent,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: employee %d is already assigned to project %d",
					apperrors.ErrDuplicate, model.EmployeeID, model.ProjectID)
			case "23503":
				return apperrors.NewValidationFailedError(
					fmt.Sprintf("employee %d or project %d does not exist", model.EmployeeID, model.ProjectID))
			}
		}
		return apperrors.NewAppError(500, "failed to save assignment", err)
	}
	return nil
}

// FindAssignment retrieves the assignment for an (employee, project) pair.
func (r *PgxAssignmentRepository) FindAssignment(ctx context.Context, employeeID, projectID int64) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM employee_project WHERE employee_id = $1 AND project_id = $2;`
	assignment, err := scanAssignment(r.Pool.QueryRow(ctx, query, employeeID, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: assignment of employee %d to project %d",
				apperrors.ErrNotFound, employeeID, projectID)
		}
		return nil, apperrors.NewAppError(500, "failed to find assignment", err)
	}
	return assignment, nil
}

func (r *PgxAssignmentRepository) collectAssignments(rows pgx.Rows) ([]domain.Assignment, error) {
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan assignment row", err)
		}
		assignments = append(assignments, *assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating assignment rows", err)
	}
	return assignments, nil
}

// FindAssignmentsByProjectID retrieves all assignment rows for a project.
func (r *PgxAssignmentRepository) FindAssignmentsByProjectID(ctx context.Context, projectID int64) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM employee_project WHERE project_id = $1 ORDER BY employee_id;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query assignments for project %d", projectID), err)
	}
	return r.collectAssignments(rows)
}

// FindAssignmentsByEmployeeID retrieves all assignment rows for an employee.
func (r *PgxAssignmentRepository) FindAssignmentsByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM employee_project WHERE employee_id = $1 ORDER BY project_id;`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query assignments for employee %d", employeeID), err)
	}
	return r.collectAssignments(rows)
}

// UpdateAssignment changes the allocation of an existing pairing.
func (r *PgxAssignmentRepository) UpdateAssignment(ctx context.Context, assignment domain.Assignment) (bool, error) {
	model := mapping.ToModelAssignment(assignment)
	query := `
		UPDATE employee_project
		SET allocation_percent = $1, last_updated_at = $2
		WHERE employee_id = $3 AND project_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.AllocationPercent,
		model.LastUpdatedAt,
		model.EmployeeID,
		model.ProjectID,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to update assignment", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAssignment removes the assignment for an (employee, project) pair.
func (r *PgxAssignmentRepository) DeleteAssignment(ctx context.Context, employeeID, projectID int64) (bool, error) {
	query := `DELETE FROM employee_project WHERE employee_id = $1 AND project_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, employeeID, projectID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete assignment", err)
	}
	return tag.RowsAffected() > 0, nil
}
