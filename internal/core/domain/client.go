package domain

import "strings"

// Client represents an external client or partner organization associated
// with zero or more projects.
type Client struct {
	ClientID      int64  `json:"clientID"` // Primary key, store-assigned
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	ContactEmail  string `json:"contactEmail"`
	AuditFields
}

// HasValidContact reports whether the client carries a usable contact email.
func (c Client) HasValidContact() bool {
	return c.ContactEmail != "" && strings.Contains(c.ContactEmail, "@")
}
