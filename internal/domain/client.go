package domain

import (
	"fmt"
	"time"
)

// ClientType selects the price tier applied to a client's offers.
type ClientType string

const (
	ClientB2B    ClientType = "b2b"
	ClientDirect ClientType = "direct"
)

func (t ClientType) Valid() bool {
	switch t {
	case ClientB2B, ClientDirect:
		return true
	}
	return false
}

func (t *ClientType) UnmarshalJSON(data []byte) error {
	v, err := unquote(data)
	if err != nil {
		return err
	}
	ct := ClientType(v)
	if !ct.Valid() {
		return fmt.Errorf("invalid client type %q", v)
	}
	*t = ct
	return nil
}

// Client is a customer record. Company, VATNumber and Notes are optional
// with explicit presence.
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Type      ClientType `json:"type"`
	Company   *string    `json:"company,omitempty"`
	VATNumber *string    `json:"vatNumber,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ClientPatch carries a partial client update; nil fields are left as-is.
type ClientPatch struct {
	Name      *string     `json:"name,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	Type      *ClientType `json:"type,omitempty"`
	Company   *string     `json:"company,omitempty"`
	VATNumber *string     `json:"vatNumber,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}

// Apply merges the patch into c.
func (patch ClientPatch) Apply(c *Client) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.Company != nil {
		c.Company = patch.Company
	}
	if patch.VATNumber != nil {
		c.VATNumber = patch.VATNumber
	}
	if patch.Notes != nil {
		c.Notes = patch.Notes
	}
}
