package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// ListDepartments retrieves all departments.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data
type DepartmentWriter interface {
	// SaveDepartment persists a new department and returns it with the
	// store-assigned identifier.
	SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error)

	// UpdateDepartment updates an existing department. The boolean reports
	// whether any row was affected.
	UpdateDepartment(ctx context.Context, department domain.Department) (bool, error)

	// DeleteDepartment removes a department. It fails with
	// apperrors.ErrReferentialIntegrity while the department still owns
	// employees; the check runs before the delete statement.
	DeleteDepartment(ctx context.Context, departmentID int64) (bool, error)
}

// DepartmentTransactionSupport defines operations usable inside an open
// transaction scope.
type DepartmentTransactionSupport interface {
	// FindDepartmentByIDInTx retrieves a department within a transaction.
	FindDepartmentByIDInTx(ctx context.Context, tx pgx.Tx, departmentID int64) (*domain.Department, error)
}

// DepartmentRepositoryFacade combines all department repository interfaces.
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
	DepartmentTransactionSupport
}
