package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/core/validation"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// employeeService provides employee CRUD and the department transfer
// coordinator, the only operation spanning multiple statements in one
// transaction scope.
type employeeService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeRepositoryWithTx
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryWithTx, departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee validates and persists a new employee. The referenced
// department must exist.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hireDate, err := dto.ParseDate(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hire date %q", apperrors.ErrValidation, req.HireDate)
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		FullName:     req.FullName,
		Title:        req.Title,
		HireDate:     hireDate,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := validation.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	// An employee always references an existing department.
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("full_name", req.FullName))
		return nil, err
	}
	return saved, nil
}

// GetEmployeeByID retrieves an employee by its identifier.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

// ListEmployees retrieves all employees.
func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

// UpdateEmployee applies the non-nil request fields to an existing employee
// and persists the result. The department reference is not touched here.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.FullName != nil {
		updated.FullName = *req.FullName
	}
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.HireDate != nil {
		hireDate, parseErr := dto.ParseDate(*req.HireDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid hire date %q", apperrors.ErrValidation, *req.HireDate)
		}
		updated.HireDate = hireDate
	}
	if req.Salary != nil {
		updated.Salary = *req.Salary
	}
	updated.LastUpdatedAt = time.Now().UTC()

	if err := validation.ValidateEmployee(updated); err != nil {
		return nil, err
	}

	ok, err := s.employeeRepo.UpdateEmployee(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: employee %d not found for update", apperrors.ErrNotFound, employeeID)
	}
	return &updated, nil
}

// DeleteEmployee removes an employee.
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	ok, err := s.employeeRepo.DeleteEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.Int64("employee_id", employeeID))
		return err
	}
	if !ok {
		return fmt.Errorf("%w: employee %d not found for delete", apperrors.ErrNotFound, employeeID)
	}
	return nil
}

// TransferEmployeeToDepartment atomically moves an employee to another
// department. The employee row is read under an exclusive row lock so
// concurrent transfers of the same employee serialize; the loser proceeds
// after the winner commits and observes the post-transfer state. All exit
// paths release the transaction scope: the deferred rollback is a no-op once
// the transaction has committed.
func (s *employeeService) TransferEmployeeToDepartment(ctx context.Context, employeeID, newDepartmentID int64) (bool, error) {
	tx, err := s.employeeRepo.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: begin: %w", apperrors.ErrTransactionFailure, err)
	}
	defer s.employeeRepo.Rollback(ctx, tx)

	employee, err := s.employeeRepo.FindEmployeeByIDForUpdate(ctx, tx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("%w: lock employee %d: %w", apperrors.ErrTransactionFailure, employeeID, err)
	}

	if _, err := s.departmentRepo.FindDepartmentByIDInTx(ctx, tx, newDepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("%w: read department %d: %w", apperrors.ErrTransactionFailure, newDepartmentID, err)
	}

	if employee.DepartmentID == newDepartmentID {
		return false, fmt.Errorf("%w: employee %d is already in department %d", apperrors.ErrValidation, employeeID, newDepartmentID)
	}

	ok, err := s.employeeRepo.UpdateEmployeeDepartmentInTx(ctx, tx, employeeID, newDepartmentID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("%w: update employee %d: %w", apperrors.ErrTransactionFailure, employeeID, err)
	}
	if !ok {
		// Zero rows affected: report failure, not an error. The deferred
		// rollback closes the scope.
		s.LogWarn(ctx, "Transfer affected no rows", slog.Int64("employee_id", employeeID))
		return false, nil
	}

	if err := s.employeeRepo.Commit(ctx, tx); err != nil {
		return false, fmt.Errorf("%w: commit: %w", apperrors.ErrTransactionFailure, err)
	}

	s.LogInfo(ctx, "Employee transferred",
		slog.Int64("employee_id", employeeID),
		slog.Int64("from_department_id", employee.DepartmentID),
		slog.Int64("to_department_id", newDepartmentID),
	)
	return true, nil
}
