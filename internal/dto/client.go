package dto

import (
	"time"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	Industry      string `json:"industry" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	ContactEmail  string `json:"contactEmail" binding:"required,contains=@"`
}

// UpdateClientRequest defines the fields of a client that may change.
// Nil fields are left untouched.
type UpdateClientRequest struct {
	Name          *string `json:"name,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	ContactPhone  *string `json:"contactPhone,omitempty"`
	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,contains=@"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      int64     `json:"clientID"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	ContactPerson string    `json:"contactPerson"`
	ContactPhone  string    `json:"contactPhone"`
	ContactEmail  string    `json:"contactEmail"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
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

// ToListClientResponse converts a slice of clients to response DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
