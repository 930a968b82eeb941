package services

import (
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Department = NewDepartmentService(repos.DepartmentRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.DepartmentRepo, repos.ClientRepo, repos.ProjectLinkRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Staffing = NewStaffingService(repos.AssignmentRepo, repos.EmployeeRepo, repos.ProjectRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.DepartmentSvcFacade = (*departmentService)(nil)
	_ portssvc.EmployeeSvcFacade   = (*employeeService)(nil)
	_ portssvc.ProjectSvcFacade    = (*projectService)(nil)
	_ portssvc.ClientSvcFacade     = (*clientService)(nil)
	_ portssvc.StaffingSvcFacade   = (*staffingService)(nil)
)
