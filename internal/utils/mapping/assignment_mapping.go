package mapping

import (
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/models"
)

// ToModelAssignment converts a domain assignment to its persistence model.
func ToModelAssignment(a domain.Assignment) models.Assignment {
	return models.Assignment{
		EmployeeID:        a.EmployeeID,
		ProjectID:         a.ProjectID,
		AllocationPercent: a.AllocationPercent,
		CreatedAt:         a.CreatedAt,
		LastUpdatedAt:     a.LastUpdatedAt,
	}
}

// ToDomainAssignment converts a persistence model to a domain assignment.
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	return domain.Assignment{
		EmployeeID:        m.EmployeeID,
		ProjectID:         m.ProjectID,
		AllocationPercent: m.AllocationPercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
