package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	"github.com/wfms/workforce_mgmt_app/internal/models"
	"github.com/wfms/workforce_mgmt_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, full_name, title, hire_date, salary, department_id, created_at, last_updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var model models.Employee
	err := row.Scan(
		&model.EmployeeID,
		&model.FullName,
		&model.Title,
		&model.HireDate,
		&model.Salary,
		&model.DepartmentID,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	employee := mapping.ToDomainEmployee(model)
	return &employee, nil
}

// SaveEmployee inserts a new employee and returns it with the store-assigned
// identifier. A dangling department reference surfaces as a validation error.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	model := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (full_name, title, hire_date, salary, department_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING employee_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		model.FullName,
		model.Title,
		model.HireDate,
		model.Salary,
		model.DepartmentID,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.EmployeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("department %d does not exist", model.DepartmentID))
		}
		return nil, apperrors.NewAppError(500, "failed to save employee", err)
	}

	saved := mapping.ToDomainEmployee(model)
	return &saved, nil
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %d", apperrors.ErrNotFound, employeeID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find employee %d", employeeID), err)
	}
	return employee, nil
}

// FindEmployeeByIDForUpdate retrieves an employee within a transaction while
// taking an exclusive row lock, serializing concurrent transfers of the same
// employee.
func (r *PgxEmployeeRepository) FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 FOR UPDATE;`
	employee, err := scanEmployee(tx.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %d", apperrors.ErrNotFound, employeeID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to lock employee %d", employeeID), err)
	}
	return employee, nil
}

// FindEmployeesByIDs retrieves multiple employees keyed by their IDs. Missing
// IDs are simply absent from the result map.
func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error) {
	employees := make(map[int64]domain.Employee, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return employees, nil
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees[employee.EmployeeID] = *employee
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return employees, nil
}

// ListEmployees retrieves all employees.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee's details.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (bool, error) {
	model := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET full_name = $1, title = $2, hire_date = $3, salary = $4, last_updated_at = $5
		WHERE employee_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.FullName,
		model.Title,
		model.HireDate,
		model.Salary,
		model.LastUpdatedAt,
		model.EmployeeID,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to update employee %d", model.EmployeeID), err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateEmployeeDepartmentInTx moves the employee to the given department
// inside an open transaction.
func (r *PgxEmployeeRepository) UpdateEmployeeDepartmentInTx(ctx context.Context, tx pgx.Tx, employeeID, departmentID int64, now time.Time) (bool, error) {
	query := `
		UPDATE employees
		SET department_id = $1, last_updated_at = $2
		WHERE employee_id = $3;
	`
	tag, err := tx.Exec(ctx, query, departmentID, now, employeeID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to move employee %d to department %d", employeeID, departmentID), err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteEmployee removes an employee.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to delete employee %d", employeeID), err)
	}
	return tag.RowsAffected() > 0, nil
}
