package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	portsrepo "github.com/wfms/workforce_mgmt_app/internal/core/ports/repositories"
	"github.com/wfms/workforce_mgmt_app/internal/models"
	"github.com/wfms/workforce_mgmt_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, industry, contact_person, contact_phone, contact_email, created_at, last_updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var model models.Client
	err := row.Scan(
		&model.ClientID,
		&model.Name,
		&model.Industry,
		&model.ContactPerson,
		&model.ContactPhone,
		&model.ContactEmail,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	client := mapping.ToDomainClient(model)
	return &client, nil
}

func (r *PgxClientRepository) collectClients(rows pgx.Rows) ([]domain.Client, error) {
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client rows", err)
	}
	return clients, nil
}

// SaveClient inserts a new client and returns it with the store-assigned
// identifier.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	model := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (name, industry, contact_person, contact_phone, contact_email, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING client_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		model.Name,
		model.Industry,
		model.ContactPerson,
		model.ContactPhone,
		model.ContactEmail,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ClientID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save client", err)
	}

	saved := mapping.ToDomainClient(model)
	return &saved, nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	client, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %d", apperrors.ErrNotFound, clientID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find client %d", clientID), err)
	}
	return client, nil
}

// ListClients retrieves all clients.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY client_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	return r.collectClients(rows)
}

// FindClientsByProjectDeadline retrieves the distinct clients that have at
// least one associated project ending on or before the deadline. A client
// with several qualifying projects appears once.
func (r *PgxClientRepository) FindClientsByProjectDeadline(ctx context.Context, deadline time.Time) ([]domain.Client, error) {
	query := `
		SELECT DISTINCT c.client_id, c.name, c.industry, c.contact_person, c.contact_phone, c.contact_email, c.created_at, c.last_updated_at
		FROM clients c
		INNER JOIN project_client pc ON c.client_id = pc.client_id
		INNER JOIN projects p ON pc.project_id = p.project_id
		WHERE p.end_date <= $1
		ORDER BY c.client_id;
	`
	rows, err := r.Pool.Query(ctx, query, deadline)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients by project deadline", err)
	}
	return r.collectClients(rows)
}

// UpdateClient updates an existing client's details.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) (bool, error) {
	model := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, industry = $2, contact_person = $3, contact_phone = $4, contact_email = $5, last_updated_at = $6
		WHERE client_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Industry,
		model.ContactPerson,
		model.ContactPhone,
		model.ContactEmail,
		model.LastUpdatedAt,
		model.ClientID,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to update client %d", model.ClientID), err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteClient removes a client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to delete client %d", clientID), err)
	}
	return tag.RowsAffected() > 0, nil
}
