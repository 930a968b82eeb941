package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/core/validation"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
)

// clientService provides client CRUD and the deadline-scoped lookup.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient validates and persists a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	now := time.Now().UTC()
	client := domain.Client{
		Name:          req.Name,
		Industry:      req.Industry,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := validation.ValidateClient(client); err != nil {
		return nil, err
	}

	saved, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("name", req.Name))
		return nil, err
	}
	return saved, nil
}

// GetClientByID retrieves a client by its identifier.
func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

// ListClients retrieves all clients.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}

// UpdateClient applies the non-nil request fields to an existing client and
// persists the result.
func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Industry != nil {
		updated.Industry = *req.Industry
	}
	if req.ContactPerson != nil {
		updated.ContactPerson = *req.ContactPerson
	}
	if req.ContactPhone != nil {
		updated.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		updated.ContactEmail = *req.ContactEmail
	}
	updated.LastUpdatedAt = time.Now().UTC()

	if err := validation.ValidateClient(updated); err != nil {
		return nil, err
	}

	ok, err := s.clientRepo.UpdateClient(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.Int64("client_id", clientID))
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: client %d not found for update", apperrors.ErrNotFound, clientID)
	}
	return &updated, nil
}

// DeleteClient removes a client.
func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	ok, err := s.clientRepo.DeleteClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.Int64("client_id", clientID))
		return err
	}
	if !ok {
		return fmt.Errorf("%w: client %d not found for delete", apperrors.ErrNotFound, clientID)
	}
	return nil
}

// FindClientsByUpcomingProjectDeadline returns the distinct clients that have
// at least one project ending within the given number of days from today.
func (s *clientService) FindClientsByUpcomingProjectDeadline(ctx context.Context, daysUntilDeadline int) ([]domain.Client, error) {
	if daysUntilDeadline < 0 {
		return nil, fmt.Errorf("%w: days until deadline must be non-negative", apperrors.ErrValidation)
	}

	deadline := time.Now().UTC().AddDate(0, 0, daysUntilDeadline)
	return s.clientRepo.FindClientsByProjectDeadline(ctx, deadline)
}
