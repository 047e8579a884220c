package store

import (
	"github.com/bjo163/showjumps-crm/internal/domain"
)

// Products returns the current catalog snapshot. The returned slice is never
// mutated afterwards; callers may keep or iterate it freely.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// ProductByID scans the catalog for a product.
func (s *Store) ProductByID(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// AddProduct appends a product. The id is caller-supplied; no uniqueness
// check is performed.
func (s *Store) AddProduct(p domain.Product) {
	s.mu.Lock()
	next := make([]domain.Product, 0, len(s.products)+1)
	next = append(next, s.products...)
	next = append(next, p)
	s.products = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityProduct, Op: OpCreate, ID: p.ID})
}

// UpdateProduct merges the patch into the matching product and refreshes its
// UpdatedAt. Silent no-op when the id is unknown.
func (s *Store) UpdateProduct(id string, patch domain.ProductPatch) {
	s.mu.Lock()
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]domain.Product, len(s.products))
	copy(next, s.products)
	p := next[idx]
	patch.Apply(&p)
	p.UpdatedAt = now()
	next[idx] = p
	s.products = next
	s.mu.Unlock()
	s.notify(Event{Entity: EntityProduct, Op: OpUpdate, ID: id})
}

// DeleteProduct removes the product and prunes its id from every deal's line
// list. Deals left without lines survive as empty deals. Silent no-op when
// the id is unknown.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	next := make([]domain.Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)
	s.products = next

	// Prune dangling line items. The deal collection is replaced only when a
	// deal actually referenced the product.
	touched := false
	for _, d := range s.deals {
		for _, ln := range d.Lines {
			if ln.ProductID == id {
				touched = true
				break
			}
		}
		if touched {
			break
		}
	}
	if touched {
		nextDeals := make([]domain.Deal, len(s.deals))
		for i, d := range s.deals {
			lines := make([]domain.DealLine, 0, len(d.Lines))
			for _, ln := range d.Lines {
				if ln.ProductID != id {
					lines = append(lines, ln)
				}
			}
			d.Lines = lines
			nextDeals[i] = d
		}
		s.deals = nextDeals
	}
	s.mu.Unlock()
	s.notify(Event{Entity: EntityProduct, Op: OpDelete, ID: id})
}
