package repositories

// RepositoryProvider bundles the per-entity repositories handed to the
// service container at startup.
type RepositoryProvider struct {
	DepartmentRepo  DepartmentRepositoryFacade
	EmployeeRepo    EmployeeRepositoryWithTx
	ProjectRepo     ProjectRepositoryFacade
	ClientRepo      ClientRepositoryFacade
	AssignmentRepo  AssignmentRepositoryFacade
	ProjectLinkRepo ProjectLinkRepositoryFacade
}
