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
	"github.com/wfms/workforce_mgmt_app/internal/core/services"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// --- Test Suite Setup ---

type DepartmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDepartmentRepository
	service  portssvc.DepartmentSvcFacade
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDepartmentRepository)
	suite.service = services.NewDepartmentService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_Success() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{
		Name:         "Engineering",
		Location:     "Berlin",
		AnnualBudget: decimal.NewFromInt(500000),
	}

	saved := &domain.Department{
		DepartmentID: 1,
		Name:         req.Name,
		Location:     req.Location,
		AnnualBudget: req.AnnualBudget,
	}

	suite.mockRepo.On("SaveDepartment", ctx, mock.AnythingOfType("domain.Department")).Return(saved, nil).Once()

	created, err := suite.service.CreateDepartment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.DepartmentID)
	suite.Equal(req.Name, created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_InvalidBudget() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{
		Name:         "Engineering",
		Location:     "Berlin",
		AnnualBudget: decimal.Zero,
	}

	created, err := suite.service.CreateDepartment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// The repository must not be touched when validation fails.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDepartment", mock.Anything, mock.Anything)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment_SaveError() {
	ctx := context.Background()
	req := dto.CreateDepartmentRequest{
		Name:         "Engineering",
		Location:     "Berlin",
		AnnualBudget: decimal.NewFromInt(500000),
	}

	expectedErr := assert.AnError
	suite.mockRepo.On("SaveDepartment", ctx, mock.AnythingOfType("domain.Department")).Return(nil, expectedErr).Once()

	created, err := suite.service.CreateDepartment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestGetDepartmentByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindDepartmentByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	department, err := suite.service.GetDepartmentByID(ctx, 42)

	suite.Require().Error(err)
	suite.Nil(department)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestUpdateDepartment_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Department{
		DepartmentID: 7,
		Name:         "Engineering",
		Location:     "Berlin",
		AnnualBudget: decimal.NewFromInt(500000),
		AuditFields:  domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	newLocation := "Munich"
	req := dto.UpdateDepartmentRequest{Location: &newLocation}

	suite.mockRepo.On("FindDepartmentByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDepartment", ctx, mock.AnythingOfType("domain.Department")).Return(true, nil).Once()

	updated, err := suite.service.UpdateDepartment(ctx, 7, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal("Munich", updated.Location)
	suite.Equal("Engineering", updated.Name)
	suite.True(updated.AnnualBudget.Equal(existing.AnnualBudget))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestDeleteDepartment_BlockedByEmployees() {
	ctx := context.Background()
	blocked := apperrors.NewReferentialIntegrityError("department 7 still has 3 employees")
	suite.mockRepo.On("DeleteDepartment", ctx, int64(7)).Return(false, blocked).Once()

	err := suite.service.DeleteDepartment(ctx, 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferentialIntegrity)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DepartmentServiceTestSuite) TestDeleteDepartment_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteDepartment", ctx, int64(99)).Return(false, nil).Once()

	err := suite.service.DeleteDepartment(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
