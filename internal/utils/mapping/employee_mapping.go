package mapping

import (
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/models"
)

// ToModelEmployee converts a domain employee to its persistence model.
func ToModelEmployee(e domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    e.EmployeeID,
		FullName:      e.FullName,
		Title:         e.Title,
		HireDate:      e.HireDate,
		Salary:        e.Salary,
		DepartmentID:  e.DepartmentID,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToDomainEmployee converts a persistence model to a domain employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		FullName:     m.FullName,
		Title:        m.Title,
		HireDate:     m.HireDate,
		Salary:       m.Salary,
		DepartmentID: m.DepartmentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
