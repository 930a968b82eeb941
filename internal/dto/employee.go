package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	FullName     string          `json:"fullName" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	HireDate     string          `json:"hireDate" binding:"required,datetime=2006-01-02"`
	Salary       decimal.Decimal `json:"salary" binding:"dgt0"`
	DepartmentID int64           `json:"departmentID" binding:"required"`
}

// UpdateEmployeeRequest defines the fields of an employee that may change.
// Nil fields are left untouched. The department reference is deliberately
// absent: it changes only through the transfer endpoint.
type UpdateEmployeeRequest struct {
	FullName *string          `json:"fullName,omitempty"`
	Title    *string          `json:"title,omitempty"`
	HireDate *string          `json:"hireDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
}

// TransferEmployeeRequest defines the target of a department transfer.
type TransferEmployeeRequest struct {
	NewDepartmentID int64 `json:"newDepartmentID" binding:"required"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    int64           `json:"employeeID"`
	FullName      string          `json:"fullName"`
	Title         string          `json:"title"`
	HireDate      string          `json:"hireDate"`
	Salary        decimal.Decimal `json:"salary"`
	DepartmentID  int64           `json:"departmentID"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		FullName:      e.FullName,
		Title:         e.Title,
		HireDate:      e.HireDate.Format(DateLayout),
		Salary:        e.Salary,
		DepartmentID:  e.DepartmentID,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of employees to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
