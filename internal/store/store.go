// Package store owns the whole mutable application state: products, clients
// and deals. Every mutation replaces the affected collection with a fresh
// slice (copy-on-write), so observers may compare slice identity to detect
// change and may iterate a snapshot without holding any lock. Operations on
// unknown ids are silent no-ops, never errors.
package store

import (
	"sync"
	"time"

	"github.com/bjo163/showjumps-crm/internal/domain"
)

// Op classifies a change event.
type Op string

const (
	OpCreate     Op = "create"
	OpUpdate     Op = "update"
	OpDelete     Op = "delete"
	OpStageMoved Op = "stage_moved"
)

// Entity names the collection a change event belongs to.
type Entity string

const (
	EntityProduct Entity = "product"
	EntityClient  Entity = "client"
	EntityDeal    Entity = "deal"
)

// Event describes one effective mutation. No-ops never produce events.
type Event struct {
	Entity Entity
	Op     Op
	ID     string
}

// Notifier receives change events synchronously after each mutation.
type Notifier interface {
	StoreChanged(ev Event)
}

// Store is an injectable state container. A nil notifier is allowed, which
// keeps tests free of wiring.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	clients  []domain.Client
	deals    []domain.Deal
	notifier Notifier
}

func New(n Notifier) *Store {
	return &Store{notifier: n}
}

func (s *Store) notify(ev Event) {
	if s.notifier != nil {
		s.notifier.StoreChanged(ev)
	}
}

func now() time.Time {
	return time.Now().UTC()
}
