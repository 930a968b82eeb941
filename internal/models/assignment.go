package models

import "time"

// Assignment mirrors the employee_project join table. The composite key is
// (employee_id, project_id).
type Assignment struct {
	EmployeeID        int64     `db:"employee_id"`
	ProjectID         int64     `db:"project_id"`
	AllocationPercent int       `db:"allocation_percent"`
	CreatedAt         time.Time `db:"created_at"`
	LastUpdatedAt     time.Time `db:"last_updated_at"`
}
