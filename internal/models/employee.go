package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee mirrors the employees table.
type Employee struct {
	EmployeeID    int64           `db:"employee_id"`
	FullName      string          `db:"full_name"`
	Title         string          `db:"title"`
	HireDate      time.Time       `db:"hire_date"`
	Salary        decimal.Decimal `db:"salary"`
	DepartmentID  int64           `db:"department_id"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
