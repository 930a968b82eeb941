package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	"github.com/wfms/workforce_mgmt_app/internal/models"
	"github.com/wfms/workforce_mgmt_app/internal/utils/mapping"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

const departmentColumns = `department_id, name, location, annual_budget, created_at, last_updated_at`

// SaveDepartment inserts a new department and returns it with the
// store-assigned identifier.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	model := mapping.ToModelDepartment(department)
	query := `
		INSERT INTO departments (name, location, annual_budget, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING department_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		model.Name,
		model.Location,
		model.AnnualBudget,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.DepartmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save department", err)
	}

	saved := mapping.ToDomainDepartment(model)
	return &saved, nil
}

// FindDepartmentByID retrieves a department by its ID.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	return r.scanDepartment(r.Pool.QueryRow(ctx, query, departmentID), departmentID)
}

// FindDepartmentByIDInTx retrieves a department within an open transaction.
func (r *PgxDepartmentRepository) FindDepartmentByIDInTx(ctx context.Context, tx pgx.Tx, departmentID int64) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	return r.scanDepartment(tx.QueryRow(ctx, query, departmentID), departmentID)
}

func (r *PgxDepartmentRepository) scanDepartment(row pgx.Row, departmentID int64) (*domain.Department, error) {
	var model models.Department
	err := row.Scan(
		&model.DepartmentID,
		&model.Name,
		&model.Location,
		&model.AnnualBudget,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: department %d", apperrors.ErrNotFound, departmentID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find department %d", departmentID), err)
	}

	department := mapping.ToDomainDepartment(model)
	return &department, nil
}

// ListDepartments retrieves all departments.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY department_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query departments", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var model models.Department
		if err := rows.Scan(
			&model.DepartmentID,
			&model.Name,
			&model.Location,
			&model.AnnualBudget,
			&model.CreatedAt,
			&model.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan department row", err)
		}
		departments = append(departments, mapping.ToDomainDepartment(model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating department rows", err)
	}
	return departments, nil
}

// UpdateDepartment updates an existing department.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) (bool, error) {
	model := mapping.ToModelDepartment(department)
	query := `
		UPDATE departments
		SET name = $1, location = $2, annual_budget = $3, last_updated_at = $4
		WHERE department_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Location,
		model.AnnualBudget,
		model.LastUpdatedAt,
		model.DepartmentID,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to update department %d", model.DepartmentID), err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteDepartment removes a department. The employee-count check runs before
// the delete statement; a department that still owns employees is never
// deleted.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64) (bool, error) {
	var employeeCount int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE department_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, departmentID).Scan(&employeeCount); err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to count employees of department %d", departmentID), err)
	}
	if employeeCount > 0 {
		return false, apperrors.NewReferentialIntegrityError(
			fmt.Sprintf("cannot delete department %d with %d existing employees", departmentID, employeeCount))
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to delete department %d", departmentID), err)
	}
	return tag.RowsAffected() > 0, nil
}
