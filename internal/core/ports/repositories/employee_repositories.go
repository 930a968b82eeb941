package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves multiple employees keyed by their IDs.
	// IDs with no matching employee are simply absent from the result.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and returns it with the
	// store-assigned identifier.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee. The boolean reports
	// whether any row was affected.
	UpdateEmployee(ctx context.Context, employee domain.Employee) (bool, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID int64) (bool, error)
}

// EmployeeTransactionSupport defines operations that run inside an open
// transaction scope during a department transfer.
type EmployeeTransactionSupport interface {
	// FindEmployeeByIDForUpdate selects an employee and takes a row lock
	// (SELECT ... FOR UPDATE) within the given transaction, serializing
	// concurrent transfers of the same employee.
	FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID int64) (*domain.Employee, error)

	// UpdateEmployeeDepartmentInTx moves the employee to the given department
	// within the transaction. The boolean reports whether any row was affected.
	UpdateEmployeeDepartmentInTx(ctx context.Context, tx pgx.Tx, employeeID, departmentID int64, now time.Time) (bool, error)
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeTransactionSupport
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction
// management for the transfer coordinator.
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
