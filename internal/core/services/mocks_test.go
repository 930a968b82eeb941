package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// MockDepartmentRepository is a mock type for the DepartmentRepositoryFacade interface
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByIDInTx(ctx context.Context, tx pgx.Tx, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, tx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) (bool, error) {
	args := m.Called(ctx, department)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64) (bool, error) {
	args := m.Called(ctx, departmentID)
	return args.Bool(0), args.Error(1)
}

// MockEmployeeRepository is a mock type for the EmployeeRepositoryWithTx interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, tx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployeeDepartmentInTx(ctx context.Context, tx pgx.Tx, employeeID, departmentID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, tx, employeeID, departmentID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEmployeeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindActiveProjectsByDepartmentID(ctx context.Context, departmentID int64, orderBy string) ([]domain.Project, error) {
	args := m.Called(ctx, departmentID, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsEndingBy(ctx context.Context, deadline time.Time) ([]domain.Project, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) (bool, error) {
	args := m.Called(ctx, project)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID int64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientsByProjectDeadline(ctx context.Context, deadline time.Time) ([]domain.Client, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) (bool, error) {
	args := m.Called(ctx, client)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID int64) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

// MockAssignmentRepository is a mock type for the AssignmentRepositoryFacade interface
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindAssignment(ctx context.Context, employeeID, projectID int64) (*domain.Assignment, error) {
	args := m.Called(ctx, employeeID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindAssignmentsByProjectID(ctx context.Context, projectID int64) ([]domain.Assignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindAssignmentsByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Assignment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) UpdateAssignment(ctx context.Context, assignment domain.Assignment) (bool, error) {
	args := m.Called(ctx, assignment)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteAssignment(ctx context.Context, employeeID, projectID int64) (bool, error) {
	args := m.Called(ctx, employeeID, projectID)
	return args.Bool(0), args.Error(1)
}

// MockProjectLinkRepository is a mock type for the ProjectLinkRepositoryFacade interface
type MockProjectLinkRepository struct {
	mock.Mock
}

func (m *MockProjectLinkRepository) LinkClientToProject(ctx context.Context, projectID, clientID int64) error {
	args := m.Called(ctx, projectID, clientID)
	return args.Error(0)
}

func (m *MockProjectLinkRepository) UnlinkClientFromProject(ctx context.Context, projectID, clientID int64) (bool, error) {
	args := m.Called(ctx, projectID, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectLinkRepository) LinkDepartmentToProject(ctx context.Context, projectID, departmentID int64) error {
	args := m.Called(ctx, projectID, departmentID)
	return args.Error(0)
}

func (m *MockProjectLinkRepository) UnlinkDepartmentFromProject(ctx context.Context, projectID, departmentID int64) (bool, error) {
	args := m.Called(ctx, projectID, departmentID)
	return args.Bool(0), args.Error(1)
}
