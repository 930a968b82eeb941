package repositories

import (
	"context"
	"time"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// FindClientsByProjectDeadline retrieves the distinct clients associated,
	// via their projects, with at least one project whose end date falls on or
	// before the deadline.
	FindClientsByProjectDeadline(ctx context.Context, deadline time.Time) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client and returns it with the store-assigned
	// identifier.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient updates an existing client. The boolean reports whether any
	// row was affected.
	UpdateClient(ctx context.Context, client domain.Client) (bool, error)

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID int64) (bool, error)
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
