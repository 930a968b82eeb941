package services

import (
	"context"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// ClientSvcFacade defines the business operations on clients.
type ClientSvcFacade interface {
	// CreateClient validates and persists a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// GetClientByID retrieves a client.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// UpdateClient applies the non-nil fields of the request to an existing
	// client and returns the updated value.
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID int64) error

	// FindClientsByUpcomingProjectDeadline returns the distinct clients with
	// at least one project ending within the given number of days from today.
	// Negative day counts fail with apperrors.ErrValidation.
	FindClientsByUpcomingProjectDeadline(ctx context.Context, daysUntilDeadline int) ([]domain.Client, error)
}
