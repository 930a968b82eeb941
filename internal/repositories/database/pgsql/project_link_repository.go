package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
)

// PgxProjectLinkRepository manages the project_client and project_department
// association tables.
type PgxProjectLinkRepository struct {
	BaseRepository
}

// newPgxProjectLinkRepository creates a new repository for project
// association data.
func newPgxProjectLinkRepository(pool *pgxpool.Pool) portsrepo.ProjectLinkRepositoryFacade {
	return &PgxProjectLinkRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectLinkRepositoryFacade = (*PgxProjectLinkRepository)(nil)

func (r *PgxProjectLinkRepository) insertLink(ctx context.Context, query, relation string, projectID, otherID int64) error {
	_, err := r.Pool.Exec(ctx, query, projectID, otherID, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: project %d is already linked to %s %d",
					apperrors.ErrDuplicate, projectID, relation, otherID)
			case "23503":
				return apperrors.NewValidationFailedError(
					fmt.Sprintf("project %d or %s %d does not exist", projectID, relation, otherID))
			}
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to link %s to project", relation), err)
	}
	return nil
}

// LinkClientToProject records that the client commissioned the project.
func (r *PgxProjectLinkRepository) LinkClientToProject(ctx context.Context, projectID, clientID int64) error {
	query := `
		INSERT INTO project_client (project_id, client_id, created_at)
		VALUES ($1, $2, $3);
	`
	return r.insertLink(ctx, query, "client", projectID, clientID)
}

// UnlinkClientFromProject removes the client-project link.
func (r *PgxProjectLinkRepository) UnlinkClientFromProject(ctx context.Context, projectID, clientID int64) (bool, error) {
	query := `DELETE FROM project_client WHERE project_id = $1 AND client_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, projectID, clientID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to unlink client from project", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LinkDepartmentToProject records that the department works on the project.
func (r *PgxProjectLinkRepository) LinkDepartmentToProject(ctx context.Context, projectID, departmentID int64) error {
	query := `
		INSERT INTO project_department (project_id, department_id, created_at)
		VALUES ($1, $2, $3);
	`
	return r.insertLink(ctx, query, "department", projectID, departmentID)
}

// UnlinkDepartmentFromProject removes the department-project link.
func (r *PgxProjectLinkRepository) UnlinkDepartmentFromProject(ctx context.Context, projectID, departmentID int64) (bool, error) {
	query := `DELETE FROM project_department WHERE project_id = $1 AND department_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, projectID, departmentID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to unlink department from project", err)
	}
	return tag.RowsAffected() > 0, nil
}
