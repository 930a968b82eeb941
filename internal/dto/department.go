package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// CreateDepartmentRequest defines the data needed to create a new department.
type CreateDepartmentRequest struct {
	Name         string          `json:"name" binding:"required"`
	Location     string          `json:"location" binding:"required"`
	AnnualBudget decimal.Decimal `json:"annualBudget" binding:"dgt0"`
}

// UpdateDepartmentRequest defines the fields of a department that may change.
// Nil fields are left untouched.
type UpdateDepartmentRequest struct {
	Name         *string          `json:"name,omitempty"`
	Location     *string          `json:"location,omitempty"`
	AnnualBudget *decimal.Decimal `json:"annualBudget,omitempty"`
}

// DepartmentResponse defines the data returned for a department.
type DepartmentResponse struct {
	DepartmentID  int64           `json:"departmentID"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	AnnualBudget  decimal.Decimal `json:"annualBudget"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToDepartmentResponse converts a domain.Department to its response DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		Location:      d.Location,
		AnnualBudget:  d.AnnualBudget,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToListDepartmentResponse converts a slice of departments to response DTOs.
func ToListDepartmentResponse(departments []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(departments))
	for i := range departments {
		res[i] = ToDepartmentResponse(&departments[i])
	}
	return res
}
