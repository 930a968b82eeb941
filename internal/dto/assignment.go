package dto

import (
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// AssignEmployeeRequest defines the data needed to staff an employee on a project.
type AssignEmployeeRequest struct {
	EmployeeID        int64 `json:"employeeID" binding:"required"`
	AllocationPercent int   `json:"allocationPercent" binding:"required,min=1,max=100"`
}

// UpdateAllocationRequest changes the allocation of an existing assignment.
type UpdateAllocationRequest struct {
	AllocationPercent int `json:"allocationPercent" binding:"required,min=1,max=100"`
}

// AssignmentResponse defines the data returned for an assignment.
type AssignmentResponse struct {
	EmployeeID        int64 `json:"employeeID"`
	ProjectID         int64 `json:"projectID"`
	AllocationPercent int   `json:"allocationPercent"`
}

// ToAssignmentResponse converts a domain.Assignment to its response DTO.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		EmployeeID:        a.EmployeeID,
		ProjectID:         a.ProjectID,
		AllocationPercent: a.AllocationPercent,
	}
}

// ToListAssignmentResponse converts a slice of assignments to response DTOs.
func ToListAssignmentResponse(assignments []domain.Assignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		res[i] = ToAssignmentResponse(&assignments[i])
	}
	return res
}
