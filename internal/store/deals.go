package store

import (
	"github.com/bjo163/showjumps-crm/internal/domain"
)

// Deals returns the current deal snapshot.
func (s *Store) Deals() []domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deals
}

// DealByID scans the deals for a deal.
func (s *Store) DealByID(id string) (domain.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Deal{}, false
}

// DealsByStage returns the deals currently in the given stage, in insertion
// order.
func (s *Store) DealsByStage(stage domain.PipelineStage) []domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Deal, 0)
	for _, d := range s.deals {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out
}

// AddDeal appends a deal. The id is caller-supplied; no uniqueness check is
// performed.
func (s *Store) AddDeal(d domain.Deal) {
	s.mu.Lock()
	next := make([]domain.Deal, 0, len(s.deals)+1)
	next = append(next, s.deals...)
	next = append(next, d)
	s.deals = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityDeal, Op: OpCreate, ID: d.ID})
}

// UpdateDeal merges the patch into the matching deal and refreshes its
// UpdatedAt. Silent no-op when the id is unknown.
func (s *Store) UpdateDeal(id string, patch domain.DealPatch) {
	s.mu.Lock()
	idx := -1
	for i, d := range s.deals {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Deal, len(s.deals))
	copy(next, s.deals)
	d := next[idx]
	patch.Apply(&d)
	d.UpdatedAt = now()
	next[idx] = d
	s.deals = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityDeal, Op: OpUpdate, ID: id})
}

// DeleteDeal removes the deal. Silent no-op when the id is unknown.
func (s *Store) DeleteDeal(id string) {
	s.mu.Lock()
	idx := -1
	for i, d := range s.deals {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Deal, 0, len(s.deals)-1)
	next = append(next, s.deals[:idx]...)
	next = append(next, s.deals[idx+1:]...)
	s.deals = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityDeal, Op: OpDelete, ID: id})
}

// UpdateDealStage moves a deal to the target stage and refreshes UpdatedAt.
// Moving a deal onto its current stage is a no-op that leaves UpdatedAt and
// the deal collection untouched, as is an unknown id.
func (s *Store) UpdateDealStage(id string, stage domain.PipelineStage) {
	s.mu.Lock()
	idx := -1
	for i, d := range s.deals {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.deals[idx].Stage == stage {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Deal, len(s.deals))
	copy(next, s.deals)
	d := next[idx]
	d.Stage = stage
	d.UpdatedAt = now()
	next[idx] = d
	s.deals = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityDeal, Op: OpStageMoved, ID: id})
}
