package repositories

import (
	"context"
	"time"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// FindActiveProjectsByDepartmentID retrieves projects with status 'Active'
	// associated with the department, ordered ascending by orderBy. The caller
	// is responsible for passing an allow-listed column name.
	FindActiveProjectsByDepartmentID(ctx context.Context, departmentID int64, orderBy string) ([]domain.Project, error)

	// FindProjectsEndingBy retrieves projects whose end date falls on or
	// before the deadline.
	FindProjectsEndingBy(ctx context.Context, deadline time.Time) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project and returns it with the
	// store-assigned identifier.
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// UpdateProject updates an existing project. The boolean reports whether
	// any row was affected.
	UpdateProject(ctx context.Context, project domain.Project) (bool, error)

	// DeleteProject removes a project.
	DeleteProject(ctx context.Context, projectID int64) (bool, error)
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
