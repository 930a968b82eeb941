package mapping

import (
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/models"
)

// ToModelDepartment converts a domain department to its persistence model.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		Location:      d.Location,
		AnnualBudget:  d.AnnualBudget,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainDepartment converts a persistence model to a domain department.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		Location:     m.Location,
		AnnualBudget: m.AnnualBudget,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
