package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department mirrors the departments table.
type Department struct {
	DepartmentID  int64           `db:"department_id"`
	Name          string          `db:"name"`
	Location      string          `db:"location"`
	AnnualBudget  decimal.Decimal `db:"annual_budget"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
