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

// allowedSortColumns is the allow-list of caller-facing sort keys for the
// department project listing, mapped to the columns the repository may order
// by. Caller-supplied sort text never reaches a query without this check.
var allowedSortColumns = map[string]string{
	"budget":     "budget",
	"end_date":   "end_date",
	"name":       "name",
	"start_date": "start_date",
}

// projectService provides project CRUD, the department-scoped listing and
// the client and department association management.
type projectService struct {
	BaseService
	projectRepo    portsrepo.ProjectRepositoryFacade
	departmentRepo portsrepo.DepartmentRepositoryFacade
	clientRepo     portsrepo.ClientRepositoryFacade
	linkRepo       portsrepo.ProjectLinkRepositoryFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	departmentRepo portsrepo.DepartmentRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	linkRepo portsrepo.ProjectLinkRepositoryFacade,
) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo:    projectRepo,
		departmentRepo: departmentRepo,
		clientRepo:     clientRepo,
		linkRepo:       linkRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject validates and persists a new project.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, req.StartDate)
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, req.EndDate)
	}

	now := time.Now().UTC()
	project := domain.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Status:      req.Status,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := validation.ValidateProject(project); err != nil {
		return nil, err
	}

	saved, err := s.projectRepo.SaveProject(ctx, project)
	if err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("name", req.Name))
		return nil, err
	}
	return saved, nil
}

// GetProjectByID retrieves a project by its identifier.
func (s *projectService) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

// ListProjects retrieves all projects.
func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx)
}

// UpdateProject applies the non-nil request fields to an existing project and
// persists the result.
func (s *projectService) UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	existing, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, parseErr := dto.ParseDate(*req.StartDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, *req.StartDate)
		}
		updated.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, parseErr := dto.ParseDate(*req.EndDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, *req.EndDate)
		}
		updated.EndDate = endDate
	}
	if req.Budget != nil {
		updated.Budget = *req.Budget
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	updated.LastUpdatedAt = time.Now().UTC()

	if err := validation.ValidateProject(updated); err != nil {
		return nil, err
	}

	ok, err := s.projectRepo.UpdateProject(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.Int64("project_id", projectID))
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: project %d not found for update", apperrors.ErrNotFound, projectID)
	}
	return &updated, nil
}

// DeleteProject removes a project.
func (s *projectService) DeleteProject(ctx context.Context, projectID int64) error {
	ok, err := s.projectRepo.DeleteProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.Int64("project_id", projectID))
		return err
	}
	if !ok {
		return fmt.Errorf("%w: project %d not found for delete", apperrors.ErrNotFound, projectID)
	}
	return nil
}

// GetProjectsByDepartment returns the department's active projects ordered
// ascending by the requested sort key. An unrecognized key fails before any
// store query is issued.
func (s *projectService) GetProjectsByDepartment(ctx context.Context, departmentID int64, sortBy string) ([]domain.Project, error) {
	column, ok := allowedSortColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("%w: invalid sort field %q", apperrors.ErrValidation, sortBy)
	}

	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}

	return s.projectRepo.FindActiveProjectsByDepartmentID(ctx, departmentID, column)
}

// FindProjectsEndingSoon returns the projects whose end date falls within the
// given number of days from today.
func (s *projectService) FindProjectsEndingSoon(ctx context.Context, daysUntilDeadline int) ([]domain.Project, error) {
	if daysUntilDeadline < 0 {
		return nil, fmt.Errorf("%w: days until deadline must be non-negative", apperrors.ErrValidation)
	}

	deadline := time.Now().UTC().AddDate(0, 0, daysUntilDeadline)
	return s.projectRepo.FindProjectsEndingBy(ctx, deadline)
}

// LinkClientToProject records that the client commissioned the project after
// checking both sides exist.
func (s *projectService) LinkClientToProject(ctx context.Context, projectID, clientID int64) error {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}

	if err := s.linkRepo.LinkClientToProject(ctx, projectID, clientID); err != nil {
		s.LogError(ctx, err, "Failed to link client to project",
			slog.Int64("project_id", projectID), slog.Int64("client_id", clientID))
		return err
	}
	return nil
}

// UnlinkClientFromProject removes the client-project link.
func (s *projectService) UnlinkClientFromProject(ctx context.Context, projectID, clientID int64) (bool, error) {
	return s.linkRepo.UnlinkClientFromProject(ctx, projectID, clientID)
}

// LinkDepartmentToProject records that the department works on the project
// after checking both sides exist.
func (s *projectService) LinkDepartmentToProject(ctx context.Context, projectID, departmentID int64) error {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return err
	}

	if err := s.linkRepo.LinkDepartmentToProject(ctx, projectID, departmentID); err != nil {
		s.LogError(ctx, err, "Failed to link department to project",
			slog.Int64("project_id", projectID), slog.Int64("department_id", departmentID))
		return err
	}
	return nil
}

// UnlinkDepartmentFromProject removes the department-project link.
func (s *projectService) UnlinkDepartmentFromProject(ctx context.Context, projectID, departmentID int64) (bool, error) {
	return s.linkRepo.UnlinkDepartmentFromProject(ctx, projectID, departmentID)
}
