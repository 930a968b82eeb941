package mapping

import (
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/models"
)

// ToModelClient converts a domain client to its persistence model.
func ToModelClient(c domain.Client) models.Client {
	return models.Client{
		ClientID:      c.ClientID,
		Name:          c.Name,
		Industry:      c.Industry,
		ContactPerson: c.ContactPerson,
		ContactPhone:  c.ContactPhone,
		ContactEmail:  c.ContactEmail,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToDomainClient converts a persistence model to a domain client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:      m.ClientID,
		Name:          m.Name,
		Industry:      m.Industry,
		ContactPerson: m.ContactPerson,
		ContactPhone:  m.ContactPhone,
		ContactEmail:  m.ContactEmail,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
