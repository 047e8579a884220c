package store

import (
	"github.com/bjo163/showjumps-crm/internal/domain"
)

// Clients returns the current client book snapshot.
func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients
}

// ClientByID scans the client book for a client.
func (s *Store) ClientByID(id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// AddClient appends a client. The id is caller-supplied; no uniqueness check
// is performed.
func (s *Store) AddClient(c domain.Client) {
	s.mu.Lock()
	next := make([]domain.Client, 0, len(s.clients)+1)
	next = append(next, s.clients...)
	next = append(next, c)
	s.clients = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityClient, Op: OpCreate, ID: c.ID})
}

// UpdateClient merges the patch into the matching client and refreshes its
// UpdatedAt. Silent no-op when the id is unknown.
func (s *Store) UpdateClient(id string, patch domain.ClientPatch) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Client, len(s.clients))
	copy(next, s.clients)
	c := next[idx]
	patch.Apply(&c)
	c.UpdatedAt = now()
	next[idx] = c
	s.clients = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityClient, Op: OpUpdate, ID: id})
}

// DeleteClient removes the client and every deal referencing it. A deal with
// no resolvable client is an orphan and must not survive. Silent no-op when
// the id is unknown.
func (s *Store) DeleteClient(id string) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	next := make([]domain.Client, 0, len(s.clients)-1)
	next = append(next, s.clients[:idx]...)
	next = append(next, s.clients[idx+1:]...)
	s.clients = next

	touched := false
	for _, d := range s.deals {
		if d.ClientID == id {
			touched = true
			break
		}
	}
	if touched {
		nextDeals := make([]domain.Deal, 0, len(s.deals))
		for _, d := range s.deals {
			if d.ClientID != id {
				nextDeals = append(nextDeals, d)
			}
		}
		s.deals = nextDeals
	}
	s.mu.Unlock()
	s.notify(Event{Entity: EntityClient, Op: OpDelete, ID: id})
}
