package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a new project.
type CreateProjectRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	StartDate   string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string          `json:"endDate" binding:"required,datetime=2006-01-02"`
	Budget      decimal.Decimal `json:"budget" binding:"dgt0"`
	Status      string          `json:"status" binding:"required"`
}

// UpdateProjectRequest defines the fields of a project that may change.
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	StartDate   *string          `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID     int64           `json:"projectID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Budget        decimal.Decimal `json:"budget"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ProjectCostResponse carries the aggregated staffing cost of a project.
type ProjectCostResponse struct {
	ProjectID int64           `json:"projectID"`
	HRCost    decimal.Decimal `json:"hrCost"`
}

// ToProjectResponse converts a domain.Project to its response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate.Format(DateLayout),
		EndDate:       p.EndDate.Format(DateLayout),
		Budget:        p.Budget,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProjectResponse converts a slice of projects to response DTOs.
func ToListProjectResponse(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i])
	}
	return res
}
