package services

import (
	"context"
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

// departmentService provides department CRUD with business-rule enforcement.
type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

// CreateDepartment validates and persists a new department.
func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	now := time.Now().UTC()
	department := domain.Department{
		Name:         req.Name,
		Location:     req.Location,
		AnnualBudget: req.AnnualBudget,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := validation.ValidateDepartment(department); err != nil {
		return nil, err
	}

	saved, err := s.departmentRepo.SaveDepartment(ctx, department)
	if err != nil {
		s.LogError(ctx, err, "Failed to save department", slog.String("name", req.Name))
		return nil, err
	}
	return saved, nil
}

// GetDepartmentByID retrieves a department by its identifier.
func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	return s.departmentRepo.FindDepartmentByID(ctx, departmentID)
}

// ListDepartments retrieves all departments.
func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departmentRepo.ListDepartments(ctx)
}

// UpdateDepartment applies the non-nil request fields to an existing
// department and persists the result.
func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID int64, req dto.UpdateDepartmentRequest) (*domain.Department, error) {
	existing, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	if req.AnnualBudget != nil {
		updated.AnnualBudget = *req.AnnualBudget
	}
	updated.LastUpdatedAt = time.Now().UTC()

	if err := validation.ValidateDepartment(updated); err != nil {
		return nil, err
	}

	ok, err := s.departmentRepo.UpdateDepartment(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update department", slog.Int64("department_id", departmentID))
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: department %d not found for update", apperrors.ErrNotFound, departmentID)
	}
	return &updated, nil
}

// DeleteDepartment removes a department. Deletion is blocked while the
// department still owns employees.
func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID int64) error {
	ok, err := s.departmentRepo.DeleteDepartment(ctx, departmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete department", slog.Int64("department_id", departmentID))
		return err
	}
	if !ok {
		return fmt.Errorf("%w: department %d not found for delete", apperrors.ErrNotFound, departmentID)
	}
	s.LogInfo(ctx, "Department deleted", slog.Int64("department_id", departmentID))
	return nil
}
