package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a member of the workforce. Every employee belongs to
// exactly one department; the department reference changes only through the
// transfer operation on the employee service.
type Employee struct {
	EmployeeID   int64           `json:"employeeID"` // Primary key, store-assigned
	FullName     string          `json:"fullName"`
	Title        string          `json:"title"`
	HireDate     time.Time       `json:"hireDate"`
	Salary       decimal.Decimal `json:"salary"` // Annual salary
	DepartmentID int64           `json:"departmentID"`
	AuditFields
}

// MonthlySalary returns the annual salary divided into twelve monthly parts,
// rounded to 2 decimal places.
func (e Employee) MonthlySalary() decimal.Decimal {
	return e.Salary.Div(decimal.NewFromInt(12)).Round(2)
}
