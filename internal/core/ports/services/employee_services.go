package services

import (
	"context"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// EmployeeSvcFacade defines the business operations on employees, including
// the transfer coordinator.
type EmployeeSvcFacade interface {
	// CreateEmployee validates and persists a new employee. The referenced
	// department must exist.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee.
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// UpdateEmployee applies the non-nil fields of the request to an existing
	// employee and returns the updated value.
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID int64) error

	// TransferEmployeeToDepartment atomically moves the employee to the given
	// department. It returns false without an error when the update affected
	// no rows; a transfer to the employee's current department fails with
	// apperrors.ErrValidation.
	TransferEmployeeToDepartment(ctx context.Context, employeeID, newDepartmentID int64) (bool, error)
}
