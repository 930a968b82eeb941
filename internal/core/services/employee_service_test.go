package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/core/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// --- Test Suite Setup ---

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo   *MockEmployeeRepository
	mockDepartmentRepo *MockDepartmentRepository
	service            portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo, suite.mockDepartmentRepo)
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		HireDate:     "2024-03-01",
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 3,
	}

	department := &domain.Department{DepartmentID: 3, Name: "Engineering"}
	saved := &domain.Employee{
		EmployeeID:   11,
		FullName:     req.FullName,
		Title:        req.Title,
		Salary:       req.Salary,
		DepartmentID: 3,
	}

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(3)).Return(department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(saved, nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(11), created.EmployeeID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockDepartmentRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UnknownDepartment() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		HireDate:     "2024-03-01",
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 99,
	}

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_BadHireDate() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		HireDate:     "01/03/2024",
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 3,
	}

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_DepartmentUntouched() {
	ctx := context.Background()
	existing := &domain.Employee{
		EmployeeID:   11,
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		HireDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 3,
	}

	newTitle := "Staff Engineer"
	req := dto.UpdateEmployeeRequest{Title: &newTitle}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Title == "Staff Engineer" && e.DepartmentID == 3
	})).Return(true, nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, 11, req)

	suite.Require().NoError(err)
	suite.Equal("Staff Engineer", updated.Title)
	suite.Equal(int64(3), updated.DepartmentID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

// --- Transfer Test Cases ---

func (suite *EmployeeServiceTestSuite) transferFixture() *domain.Employee {
	return &domain.Employee{
		EmployeeID:   11,
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 3,
	}
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_Success() {
	ctx := context.Background()
	employee := suite.transferFixture()
	targetDept := &domain.Department{DepartmentID: 5, Name: "Research"}

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(11)).Return(employee, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByIDInTx", ctx, mock.Anything, int64(5)).Return(targetDept, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployeeDepartmentInTx", ctx, mock.Anything, int64(11), int64(5), mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	suite.mockEmployeeRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 11, 5)

	suite.Require().NoError(err)
	suite.True(transferred)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockDepartmentRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_SameDepartment() {
	ctx := context.Background()
	employee := suite.transferFixture()
	currentDept := &domain.Department{DepartmentID: 3, Name: "Engineering"}

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(11)).Return(employee, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByIDInTx", ctx, mock.Anything, int64(3)).Return(currentDept, nil).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 11, 3)

	suite.Require().Error(err)
	suite.False(transferred)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateEmployeeDepartmentInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_EmployeeNotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 404, 5)

	suite.Require().Error(err)
	suite.False(transferred)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrTransactionFailure)
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_TargetDepartmentNotFound() {
	ctx := context.Background()
	employee := suite.transferFixture()

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(11)).Return(employee, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByIDInTx", ctx, mock.Anything, int64(77)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 11, 77)

	suite.Require().Error(err)
	suite.False(transferred)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_ZeroRowsIsNotAnError() {
	ctx := context.Background()
	employee := suite.transferFixture()
	targetDept := &domain.Department{DepartmentID: 5, Name: "Research"}

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(11)).Return(employee, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByIDInTx", ctx, mock.Anything, int64(5)).Return(targetDept, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployeeDepartmentInTx", ctx, mock.Anything, int64(11), int64(5), mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 11, 5)

	suite.Require().NoError(err)
	suite.False(transferred)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestTransferEmployee_UpdateFailureWrapsTransactionError() {
	ctx := context.Background()
	employee := suite.transferFixture()
	targetDept := &domain.Department{DepartmentID: 5, Name: "Research"}

	suite.mockEmployeeRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByIDForUpdate", ctx, mock.Anything, int64(11)).Return(employee, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByIDInTx", ctx, mock.Anything, int64(5)).Return(targetDept, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployeeDepartmentInTx", ctx, mock.Anything, int64(11), int64(5), mock.AnythingOfType("time.Time")).Return(false, assert.AnError).Once()
	suite.mockEmployeeRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	transferred, err := suite.service.TransferEmployeeToDepartment(ctx, 11, 5)

	suite.Require().Error(err)
	suite.False(transferred)
	suite.ErrorIs(err, apperrors.ErrTransactionFailure)
	suite.ErrorIs(err, assert.AnError)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
