package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/core/validation"
	"github.com/wfms/workforce_mgmt_app/internal/utils/costing"
)

// staffingService manages employee-project assignments and derives the
// staffing cost metric from them.
type staffingService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	projectRepo    portsrepo.ProjectRepositoryFacade
}

// NewStaffingService creates a new StaffingService.
func NewStaffingService(
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
) portssvc.StaffingSvcFacade {
	return &staffingService{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
	}
}

var _ portssvc.StaffingSvcFacade = (*staffingService)(nil)

// AssignEmployeeToProject staffs an employee on a project after checking both
// exist and the allocation is within range.
func (s *staffingService) AssignEmployeeToProject(ctx context.Context, employeeID, projectID int64, allocationPercent int) error {
	if err := validation.ValidateAllocation(allocationPercent); err != nil {
		return err
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return err
	}

	now := time.Now().UTC()
	assignment := domain.Assignment{
		EmployeeID:        employeeID,
		ProjectID:         projectID,
		AllocationPercent: allocationPercent,
		AuditFields:       domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.assignmentRepo.SaveAssignment(ctx, assignment); err != nil {
		s.LogError(ctx, err, "Failed to save assignment",
			slog.Int64("employee_id", employeeID), slog.Int64("project_id", projectID))
		return err
	}
	return nil
}

// UpdateAllocation changes the allocation of an existing assignment. The
// pairing is looked up first so a missing assignment fails with a precise
// not-found error rather than a bare zero-rows result.
func (s *staffingService) UpdateAllocation(ctx context.Context, employeeID, projectID int64, allocationPercent int) (bool, error) {
	if err := validation.ValidateAllocation(allocationPercent); err != nil {
		return false, err
	}

	if _, err := s.assignmentRepo.FindAssignment(ctx, employeeID, projectID); err != nil {
		return false, err
	}

	assignment := domain.Assignment{
		EmployeeID:        employeeID,
		ProjectID:         projectID,
		AllocationPercent: allocationPercent,
		AuditFields:       domain.AuditFields{LastUpdatedAt: time.Now().UTC()},
	}
	return s.assignmentRepo.UpdateAssignment(ctx, assignment)
}

// RemoveEmployeeFromProject deletes the assignment for the pairing.
func (s *staffingService) RemoveEmployeeFromProject(ctx context.Context, employeeID, projectID int64) (bool, error) {
	return s.assignmentRepo.DeleteAssignment(ctx, employeeID, projectID)
}

// GetProjectAssignments retrieves all assignment rows for a project.
func (s *staffingService) GetProjectAssignments(ctx context.Context, projectID int64) ([]domain.Assignment, error) {
	return s.assignmentRepo.FindAssignmentsByProjectID(ctx, projectID)
}

// GetEmployeeAssignments retrieves all assignment rows for an employee.
func (s *staffingService) GetEmployeeAssignments(ctx context.Context, employeeID int64) ([]domain.Assignment, error) {
	return s.assignmentRepo.FindAssignmentsByEmployeeID(ctx, employeeID)
}

// CalculateProjectHRCost aggregates the staffing cost of a project. Each
// employee contributes salary x duration months x combined allocation / 1200;
// the per-employee figures keep full division precision and only the final
// total is rounded, to 2 decimal places. Assignment rows whose employee no
// longer exists contribute zero rather than failing the whole calculation.
func (s *staffingService) CalculateProjectHRCost(ctx context.Context, projectID int64) (decimal.Decimal, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}

	durationMonths := project.DurationInMonths()

	assignments, err := s.assignmentRepo.FindAssignmentsByProjectID(ctx, projectID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch assignments for project %d: %w", projectID, err)
	}
	if len(assignments) == 0 {
		return decimal.Zero.Round(2), nil
	}

	allocations := costing.SumAllocationsByEmployee(assignments)

	employeeIDs := make([]int64, 0, len(allocations))
	for employeeID := range allocations {
		employeeIDs = append(employeeIDs, employeeID)
	}

	employees, err := s.employeeRepo.FindEmployeesByIDs(ctx, employeeIDs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch employees for project %d: %w", projectID, err)
	}

	total := decimal.Zero
	for employeeID, allocationPercent := range allocations {
		employee, found := employees[employeeID]
		if !found {
			// Tolerated data-integrity gap: the assignment row outlived the
			// employee record.
			s.LogWarn(ctx, "Assignment references missing employee",
				slog.Int64("employee_id", employeeID), slog.Int64("project_id", projectID))
			continue
		}
		total = total.Add(costing.EmployeeProjectCost(employee.Salary, durationMonths, allocationPercent))
	}

	return total.Round(2), nil
}
