package repositories

import (
	"context"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// AssignmentReader defines read operations for employee-project assignments
type AssignmentReader interface {
	// FindAssignment retrieves the assignment for an (employee, project) pair.
	FindAssignment(ctx context.Context, employeeID, projectID int64) (*domain.Assignment, error)

	// FindAssignmentsByProjectID retrieves all assignment rows for a project.
	FindAssignmentsByProjectID(ctx context.Context, projectID int64) ([]domain.Assignment, error)

	// FindAssignmentsByEmployeeID retrieves all assignment rows for an employee.
	FindAssignmentsByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Assignment, error)
}

// AssignmentWriter defines write operations for employee-project assignments
type AssignmentWriter interface {
	// SaveAssignment persists a new assignment row. It fails with
	// apperrors.ErrDuplicate when the pairing already exists.
	SaveAssignment(ctx context.Context, assignment domain.Assignment) error

	// UpdateAssignment changes the allocation of an existing pairing. The
	// boolean reports whether any row was affected.
	UpdateAssignment(ctx context.Context, assignment domain.Assignment) (bool, error)

	// DeleteAssignment removes the assignment for an (employee, project) pair.
	DeleteAssignment(ctx context.Context, employeeID, projectID int64) (bool, error)
}

// AssignmentRepositoryFacade combines all assignment repository interfaces.
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
