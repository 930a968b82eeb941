package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project mirrors the projects table.
type Project struct {
	ProjectID     int64           `db:"project_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	Budget        decimal.Decimal `db:"budget"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
