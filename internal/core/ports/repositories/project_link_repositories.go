package repositories

import "context"

// ProjectLinkWriter defines write operations on the project association
// tables linking projects to clients and departments.
type ProjectLinkWriter interface {
	// LinkClientToProject records that the client commissioned the project.
	// It fails with apperrors.ErrDuplicate when the link already exists.
	LinkClientToProject(ctx context.Context, projectID, clientID int64) error

	// UnlinkClientFromProject removes the client-project link. The boolean
	// reports whether any row was affected.
	UnlinkClientFromProject(ctx context.Context, projectID, clientID int64) (bool, error)

	// LinkDepartmentToProject records that the department works on the
	// project. It fails with apperrors.ErrDuplicate when the link already
	// exists.
	LinkDepartmentToProject(ctx context.Context, projectID, departmentID int64) error

	// UnlinkDepartmentFromProject removes the department-project link. The
	// boolean reports whether any row was affected.
	UnlinkDepartmentFromProject(ctx context.Context, projectID, departmentID int64) (bool, error)
}

// ProjectLinkRepositoryFacade combines all project link repository
// interfaces.
type ProjectLinkRepositoryFacade interface {
	ProjectLinkWriter
}
