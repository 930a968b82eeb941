package services

import (
	"context"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// ProjectSvcFacade defines the business operations on projects.
type ProjectSvcFacade interface {
	// CreateProject validates and persists a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)

	// GetProjectByID retrieves a project.
	GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// UpdateProject applies the non-nil fields of the request to an existing
	// project and returns the updated value.
	UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project.
	DeleteProject(ctx context.Context, projectID int64) error

	// GetProjectsByDepartment returns the department's active projects ordered
	// ascending by sortBy. sortBy must be one of budget, end_date, name,
	// start_date; anything else fails with apperrors.ErrValidation before any
	// store query is issued.
	GetProjectsByDepartment(ctx context.Context, departmentID int64, sortBy string) ([]domain.Project, error)

	// FindProjectsEndingSoon returns the projects whose end date falls within
	// the given number of days from today. Negative days fail with
	// apperrors.ErrValidation.
	FindProjectsEndingSoon(ctx context.Context, daysUntilDeadline int) ([]domain.Project, error)

	// LinkClientToProject records that the client commissioned the project.
	// Both sides must exist; a repeated pairing fails with
	// apperrors.ErrDuplicate.
	LinkClientToProject(ctx context.Context, projectID, clientID int64) error

	// UnlinkClientFromProject removes the client-project link. It returns
	// false without an error when no link existed.
	UnlinkClientFromProject(ctx context.Context, projectID, clientID int64) (bool, error)

	// LinkDepartmentToProject records that the department works on the
	// project. Both sides must exist; a repeated pairing fails with
	// apperrors.ErrDuplicate.
	LinkDepartmentToProject(ctx context.Context, projectID, departmentID int64) error

	// UnlinkDepartmentFromProject removes the department-project link. It
	// returns false without an error when no link existed.
	UnlinkDepartmentFromProject(ctx context.Context, projectID, departmentID int64) (bool, error)
}
