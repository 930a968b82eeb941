package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/core/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// --- Test Suite Setup ---

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo    *MockProjectRepository
	mockDepartmentRepo *MockDepartmentRepository
	mockClientRepo     *MockClientRepository
	mockLinkRepo       *MockProjectLinkRepository
	service            portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockLinkRepo = new(MockProjectLinkRepository)
	suite.service = services.NewProjectService(
		suite.mockProjectRepo, suite.mockDepartmentRepo, suite.mockClientRepo, suite.mockLinkRepo)
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name:      "Platform Rewrite",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		Budget:    decimal.NewFromInt(250000),
		Status:    "Active",
	}

	saved := &domain.Project{ProjectID: 21, Name: req.Name, Status: "Active"}
	suite.mockProjectRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(saved, nil).Once()

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(21), created.ProjectID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name:      "Platform Rewrite",
		StartDate: "2026-06-30",
		EndDate:   "2026-01-01",
		Budget:    decimal.NewFromInt(250000),
		Status:    "Active",
	}

	created, err := suite.service.CreateProject(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestGetProjectsByDepartment_Success() {
	ctx := context.Background()
	department := &domain.Department{DepartmentID: 3, Name: "Engineering"}
	projects := []domain.Project{
		{ProjectID: 1, Name: "Alpha", Status: "Active"},
		{ProjectID: 2, Name: "Beta", Status: "Active"},
	}

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(3)).Return(department, nil).Once()
	suite.mockProjectRepo.On("FindActiveProjectsByDepartmentID", ctx, int64(3), "end_date").Return(projects, nil).Once()

	result, err := suite.service.GetProjectsByDepartment(ctx, 3, "end_date")

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockDepartmentRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProjectsByDepartment_RejectsUnknownSortKey() {
	ctx := context.Background()

	result, err := suite.service.GetProjectsByDepartment(ctx, 3, "shipdate")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// An unrecognized sort key must be rejected before any store access.
	suite.mockDepartmentRepo.AssertNotCalled(suite.T(), "FindDepartmentByID", mock.Anything, mock.Anything)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindActiveProjectsByDepartmentID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestGetProjectsByDepartment_RejectsSQLInjectionAttempt() {
	ctx := context.Background()

	result, err := suite.service.GetProjectsByDepartment(ctx, 3, "name; DROP TABLE projects")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindActiveProjectsByDepartmentID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestGetProjectsByDepartment_UnknownDepartment() {
	ctx := context.Background()
	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetProjectsByDepartment(ctx, 99, "name")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindActiveProjectsByDepartmentID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Project{
		ProjectID: 21,
		Name:      "Platform Rewrite",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Budget:    decimal.NewFromInt(250000),
		Status:    "Active",
	}

	newStatus := "Completed"
	req := dto.UpdateProjectRequest{Status: &newStatus}

	suite.mockProjectRepo.On("FindProjectByID", ctx, int64(21)).Return(existing, nil).Once()
	suite.mockProjectRepo.On("UpdateProject", ctx, mock.AnythingOfType("domain.Project")).Return(true, nil).Once()

	updated, err := suite.service.UpdateProject(ctx, 21, req)

	suite.Require().NoError(err)
	suite.Equal("Completed", updated.Status)
	suite.Equal("Platform Rewrite", updated.Name)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestFindProjectsEndingSoon_Success() {
	ctx := context.Background()
	expected := []domain.Project{{ProjectID: 21, Name: "Platform Rewrite"}}

	suite.mockProjectRepo.On("FindProjectsEndingBy", ctx, mock.MatchedBy(func(deadline time.Time) bool {
		return time.Until(deadline.AddDate(0, 0, -14)).Abs() < time.Minute
	})).Return(expected, nil).Once()

	projects, err := suite.service.FindProjectsEndingSoon(ctx, 14)

	suite.Require().NoError(err)
	suite.Equal(expected, projects)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestFindProjectsEndingSoon_NegativeDays() {
	ctx := context.Background()

	_, err := suite.service.FindProjectsEndingSoon(ctx, -1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindProjectsEndingBy", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestLinkClientToProject_Success() {
	ctx := context.Background()
	suite.mockProjectRepo.On("FindProjectByID", ctx, int64(21)).Return(&domain.Project{ProjectID: 21}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(31)).Return(&domain.Client{ClientID: 31}, nil).Once()
	suite.mockLinkRepo.On("LinkClientToProject", ctx, int64(21), int64(31)).Return(nil).Once()

	err := suite.service.LinkClientToProject(ctx, 21, 31)

	suite.Require().NoError(err)
	suite.mockLinkRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestLinkClientToProject_UnknownClient() {
	ctx := context.Background()
	suite.mockProjectRepo.On("FindProjectByID", ctx, int64(21)).Return(&domain.Project{ProjectID: 21}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(99)).
		Return(nil, fmt.Errorf("%w: client 99", apperrors.ErrNotFound)).Once()

	err := suite.service.LinkClientToProject(ctx, 21, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLinkRepo.AssertNotCalled(suite.T(), "LinkClientToProject", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestLinkClientToProject_DuplicateLink() {
	ctx := context.Background()
	suite.mockProjectRepo.On("FindProjectByID", ctx, int64(21)).Return(&domain.Project{ProjectID: 21}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(31)).Return(&domain.Client{ClientID: 31}, nil).Once()
	suite.mockLinkRepo.On("LinkClientToProject", ctx, int64(21), int64(31)).
		Return(fmt.Errorf("%w: project 21 is already linked to client 31", apperrors.ErrDuplicate)).Once()

	err := suite.service.LinkClientToProject(ctx, 21, 31)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ProjectServiceTestSuite) TestLinkDepartmentToProject_Success() {
	ctx := context.Background()
	suite.mockProjectRepo.On("FindProjectByID", ctx, int64(21)).Return(&domain.Project{ProjectID: 21}, nil).Once()
	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(7)).Return(&domain.Department{DepartmentID: 7}, nil).Once()
	suite.mockLinkRepo.On("LinkDepartmentToProject", ctx, int64(21), int64(7)).Return(nil).Once()

	err := suite.service.LinkDepartmentToProject(ctx, 21, 7)

	suite.Require().NoError(err)
	suite.mockLinkRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUnlinkDepartmentFromProject_NoRows() {
	ctx := context.Background()
	suite.mockLinkRepo.On("UnlinkDepartmentFromProject", ctx, int64(21), int64(7)).Return(false, nil).Once()

	removed, err := suite.service.UnlinkDepartmentFromProject(ctx, 21, 7)

	suite.Require().NoError(err)
	suite.False(removed)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
