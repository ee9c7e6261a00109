package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ClientFields carries raw form input for a client record.
type ClientFields struct {
	Name  string
	Phone string
	Car   string
}

// AddClient appends a new client. LastVisit is stamped at creation
// and never auto-updated afterwards.
func (s *Store) AddClient(f ClientFields) (Client, error) {
	if strings.TrimSpace(f.Name) == "" {
		return Client{}, fmt.Errorf("client name required: %w", ErrValidation)
	}
	c := Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(f.Name),
		Phone:     strings.TrimSpace(f.Phone),
		Car:       strings.TrimSpace(f.Car),
		LastVisit: s.today(),
	}
	s.clients = append(s.clients, c)
	return c, nil
}

// DeleteClient removes the matching client. Absent id is a no-op.
// Clients have no update operation; edit is delete plus re-add.
func (s *Store) DeleteClient(id string) {
	s.clients = deleteByID(s.clients, id, func(c Client) string { return c.ID })
}

// ClientByID returns the client matching id, or nil.
func (s *Store) ClientByID(id string) *Client {
	for i := range s.clients {
		if s.clients[i].ID == id {
			c := s.clients[i]
			return &c
		}
	}
	return nil
}
