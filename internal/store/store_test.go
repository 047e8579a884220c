package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjo163/showjumps-crm/internal/domain"
)

func past() time.Time {
	return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
}

func seedProduct(id, sku string) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      "Training Jump " + id,
		Price:     100,
		B2BPrice:  80,
		Category:  domain.CategoryTrainingJumps,
		SKU:       sku,
		Stock:     5,
		CreatedAt: past(),
		UpdatedAt: past(),
	}
}

func seedClient(id string, typ domain.ClientType) domain.Client {
	return domain.Client{
		ID:        id,
		Name:      "Client " + id,
		Email:     id + "@example.com",
		Phone:     "123",
		Type:      typ,
		CreatedAt: past(),
		UpdatedAt: past(),
	}
}

func seedDeal(id, clientID string, lines ...domain.DealLine) domain.Deal {
	return domain.Deal{
		ID:        id,
		ClientID:  clientID,
		Lines:     lines,
		Stage:     domain.StageLead,
		Value:     1000,
		CreatedAt: past(),
		UpdatedAt: past(),
	}
}

// sameDeals reports whether two snapshots are the identical slice.
func sameDeals(a, b []domain.Deal) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func TestProductCRUD(t *testing.T) {
	s := New(nil)
	s.AddProduct(seedProduct("p1", "TJ-001"))

	p, found := s.ProductByID("p1")
	require.True(t, found)
	assert.Equal(t, "TJ-001", p.SKU)

	name := "Renamed"
	price := 149.99
	s.UpdateProduct("p1", domain.ProductPatch{Name: &name, Price: &price})
	p, _ = s.ProductByID("p1")
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, 149.99, p.Price)
	assert.Equal(t, 80.0, p.B2BPrice, "unpatched field kept")
	assert.True(t, p.UpdatedAt.After(past()))

	s.DeleteProduct("p1")
	_, found = s.ProductByID("p1")
	assert.False(t, found)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := New(nil)
	s.AddProduct(seedProduct("p1", "TJ-001"))
	before := s.Products()

	name := "ghost"
	s.UpdateProduct("nope", domain.ProductPatch{Name: &name})
	s.DeleteProduct("nope")
	s.UpdateClient("nope", domain.ClientPatch{Name: &name})
	s.DeleteClient("nope")
	s.UpdateDeal("nope", domain.DealPatch{Notes: &name})
	s.DeleteDeal("nope")

	after := s.Products()
	assert.Equal(t, len(before), len(after))
	assert.True(t, &before[0] == &after[0], "no-op must keep the identical snapshot")
}

func TestDeleteClientCascadesDeals(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddClient(seedClient("c2", domain.ClientDirect))
	s.AddDeal(seedDeal("d1", "c1"))
	s.AddDeal(seedDeal("d2", "c2"))
	s.AddDeal(seedDeal("d3", "c1"))

	s.DeleteClient("c1")

	_, found := s.ClientByID("c1")
	assert.False(t, found)
	deals := s.Deals()
	require.Len(t, deals, 1)
	assert.Equal(t, "d2", deals[0].ID, "only the deleted client's deals are removed")
}

func TestDeleteProductPrunesDealLines(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddProduct(seedProduct("p1", "TJ-001"))
	s.AddProduct(seedProduct("p2", "TJ-002"))
	s.AddDeal(seedDeal("d1", "c1",
		domain.DealLine{ProductID: "p1", Quantity: 2},
		domain.DealLine{ProductID: "p2", Quantity: 1},
	))
	s.AddDeal(seedDeal("d2", "c1",
		domain.DealLine{ProductID: "p1", Quantity: 3},
	))

	s.DeleteProduct("p1")

	d1, _ := s.DealByID("d1")
	require.Len(t, d1.Lines, 1)
	assert.Equal(t, "p2", d1.Lines[0].ProductID)

	// A deal whose only line referenced the product survives as an empty deal.
	d2, found := s.DealByID("d2")
	require.True(t, found)
	assert.Empty(t, d2.Lines)
}

func TestDeleteProductWithoutReferencesKeepsDealSnapshot(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddProduct(seedProduct("p1", "TJ-001"))
	s.AddDeal(seedDeal("d1", "c1"))
	before := s.Deals()

	s.DeleteProduct("p1")

	assert.True(t, sameDeals(before, s.Deals()), "unreferenced product deletion must not rebuild deals")
}

func TestUpdateDealStage(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddDeal(seedDeal("d1", "c1"))

	t.Run("unknown id leaves the collection reference-equal", func(t *testing.T) {
		before := s.Deals()
		s.UpdateDealStage("nope", domain.StageNegotiation)
		assert.True(t, sameDeals(before, s.Deals()))
	})

	t.Run("same stage leaves updatedAt alone", func(t *testing.T) {
		before := s.Deals()
		s.UpdateDealStage("d1", domain.StageLead)
		assert.True(t, sameDeals(before, s.Deals()))
		d, _ := s.DealByID("d1")
		assert.Equal(t, past(), d.UpdatedAt)
	})

	t.Run("stage move refreshes updatedAt", func(t *testing.T) {
		s.UpdateDealStage("d1", domain.StageClosedWon)
		d, _ := s.DealByID("d1")
		assert.Equal(t, domain.StageClosedWon, d.Stage)
		assert.True(t, d.UpdatedAt.After(past()))
	})

	t.Run("closed deals can be reopened", func(t *testing.T) {
		moved, _ := s.DealByID("d1")
		s.UpdateDealStage("d1", domain.StageLead)
		d, _ := s.DealByID("d1")
		assert.Equal(t, domain.StageLead, d.Stage)
		assert.False(t, d.UpdatedAt.Before(moved.UpdatedAt))
	})
}

func TestDealsByStage(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddDeal(seedDeal("d1", "c1"))
	s.AddDeal(seedDeal("d2", "c1"))
	s.UpdateDealStage("d2", domain.StageNegotiation)

	leads := s.DealsByStage(domain.StageLead)
	require.Len(t, leads, 1)
	assert.Equal(t, "d1", leads[0].ID)
	assert.Empty(t, s.DealsByStage(domain.StageClosedLost))
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := New(nil)
	s.AddProduct(seedProduct("p1", "TJ-001"))
	snapshot := s.Products()

	name := "changed"
	s.UpdateProduct("p1", domain.ProductPatch{Name: &name})

	assert.Equal(t, "Training Jump p1", snapshot[0].Name, "old snapshot must not see later mutations")
	assert.False(t, &snapshot[0] == &s.Products()[0], "mutation must produce a new snapshot")
}

type recordingNotifier struct {
	events []Event
}

func (r *recordingNotifier) StoreChanged(ev Event) {
	r.events = append(r.events, ev)
}

func TestNotifierReceivesOnlyEffectiveMutations(t *testing.T) {
	rec := &recordingNotifier{}
	s := New(rec)

	s.AddClient(seedClient("c1", domain.ClientB2B))
	s.AddDeal(seedDeal("d1", "c1"))
	s.UpdateDealStage("d1", domain.StageLead)      // same stage: no event
	s.UpdateDealStage("nope", domain.StageLead)    // unknown id: no event
	s.UpdateDealStage("d1", domain.StageClosedWon) // effective move

	require.Len(t, rec.events, 3)
	assert.Equal(t, Event{Entity: EntityClient, Op: OpCreate, ID: "c1"}, rec.events[0])
	assert.Equal(t, Event{Entity: EntityDeal, Op: OpCreate, ID: "d1"}, rec.events[1])
	assert.Equal(t, Event{Entity: EntityDeal, Op: OpStageMoved, ID: "d1"}, rec.events[2])
}

func TestClientOptionalFieldsPatch(t *testing.T) {
	s := New(nil)
	s.AddClient(seedClient("c1", domain.ClientB2B))

	company := "Showjumps GmbH"
	s.UpdateClient("c1", domain.ClientPatch{Company: &company})
	c, _ := s.ClientByID("c1")
	require.NotNil(t, c.Company)
	assert.Equal(t, "Showjumps GmbH", *c.Company)
	assert.Nil(t, c.VATNumber, "absent optional field stays absent")
}
