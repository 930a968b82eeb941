package services

import (
	"context"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// DepartmentSvcFacade defines the business operations on departments.
type DepartmentSvcFacade interface {
	// CreateDepartment validates and persists a new department.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)

	// GetDepartmentByID retrieves a department.
	GetDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// ListDepartments retrieves all departments.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// UpdateDepartment applies the non-nil fields of the request to an
	// existing department and returns the updated value.
	UpdateDepartment(ctx context.Context, departmentID int64, req dto.UpdateDepartmentRequest) (*domain.Department, error)

	// DeleteDepartment removes a department. It fails with
	// apperrors.ErrReferentialIntegrity while employees still belong to it.
	DeleteDepartment(ctx context.Context, departmentID int64) error
}
