package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over a shared connection
// pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DepartmentRepo:  newPgxDepartmentRepository(pool),
		EmployeeRepo:    newPgxEmployeeRepository(pool),
		ProjectRepo:     newPgxProjectRepository(pool),
		ClientRepo:      newPgxClientRepository(pool),
		AssignmentRepo:  newPgxAssignmentRepository(pool),
		ProjectLinkRepo: newPgxProjectLinkRepository(pool),
	}
}
