package domain

import (
	"github.com/shopspring/decimal"
)

// Department represents an organizational unit that owns employees.
// This is the primary representation used by services; departments are
// immutable values, updates produce a new value rather than mutating in place.
type Department struct {
	DepartmentID int64           `json:"departmentID"` // Primary key, store-assigned
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	AnnualBudget decimal.Decimal `json:"annualBudget"`
	AuditFields
}
