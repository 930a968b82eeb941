package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// StaffingSvcFacade defines the operations on employee-project assignments
// and the derived staffing cost metric.
type StaffingSvcFacade interface {
	// AssignEmployeeToProject staffs an employee on a project with the given
	// allocation percent (1..100). Employee and project must exist.
	AssignEmployeeToProject(ctx context.Context, employeeID, projectID int64, allocationPercent int) error

	// UpdateAllocation changes the allocation of an existing assignment. A
	// pairing that does not exist fails with apperrors.ErrNotFound; it returns
	// false without an error only when the row vanished between the lookup
	// and the update.
	UpdateAllocation(ctx context.Context, employeeID, projectID int64, allocationPercent int) (bool, error)

	// RemoveEmployeeFromProject deletes the assignment for the pairing. It
	// returns false without an error when no row was affected.
	RemoveEmployeeFromProject(ctx context.Context, employeeID, projectID int64) (bool, error)

	// GetProjectAssignments retrieves all assignment rows for a project.
	GetProjectAssignments(ctx context.Context, projectID int64) ([]domain.Assignment, error)

	// GetEmployeeAssignments retrieves all assignment rows for an employee.
	GetEmployeeAssignments(ctx context.Context, employeeID int64) ([]domain.Assignment, error)

	// CalculateProjectHRCost aggregates the staffing cost of a project from
	// employee salaries, allocations and the ceil-rounded month duration,
	// rounded to 2 decimal places.
	CalculateProjectHRCost(ctx context.Context, projectID int64) (decimal.Decimal, error)
}
