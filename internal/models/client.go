package models

import "time"

// Client mirrors the clients table.
type Client struct {
	ClientID      int64     `db:"client_id"`
	Name          string    `db:"name"`
	Industry      string    `db:"industry"`
	ContactPerson string    `db:"contact_person"`
	ContactPhone  string    `db:"contact_phone"`
	ContactEmail  string    `db:"contact_email"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
