package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatusActive is the status value recognized by staffing-related
// queries. The comparison is case-sensitive.
const ProjectStatusActive = "Active"

// Project represents an operational task or initiative. Projects are staffed
// through employee assignments and can be associated with departments and
// clients via join relations.
type Project struct {
	ProjectID   int64           `json:"projectID"` // Primary key, store-assigned
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	AuditFields
}

// DurationInMonths returns the project duration derived from the inclusive
// day span, with any partial month rounded up to a full month. A one-day
// project counts as one month.
func (p Project) DurationInMonths() int64 {
	days := int64(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return (days + 29) / 30
}

// IsActive reports whether the project status is exactly "Active".
func (p Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

// IsEndingSoon reports whether the project ends on or before today plus the
// given number of days.
func (p Project) IsEndingSoon(daysUntilDeadline int) bool {
	deadline := time.Now().UTC().AddDate(0, 0, daysUntilDeadline)
	return !p.EndDate.After(deadline)
}
