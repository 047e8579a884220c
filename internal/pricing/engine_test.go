package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjo163/showjumps-crm/internal/domain"
)

const eps = 1e-9

func b2bClient() domain.Client {
	return domain.Client{ID: "c1", Name: "Equestrian Center Elite", Type: domain.ClientB2B}
}

func directClient() domain.Client {
	return domain.Client{ID: "c2", Name: "Jane Rider", Type: domain.ClientDirect}
}

func jump() domain.Product {
	return domain.Product{ID: "p1", Name: "Training Jump", Price: 100, B2BPrice: 80, SKU: "TJ-001"}
}

func TestQuoteB2BTier(t *testing.T) {
	sum, err := Quote(b2bClient(), []Line{{Product: jump(), Quantity: 2, Discount: 10}})
	require.NoError(t, err)
	require.Len(t, sum.Lines, 1)

	ln := sum.Lines[0]
	assert.InDelta(t, 80, ln.UnitPrice, eps)
	assert.InDelta(t, 144.0, ln.Total, eps) // 80*2*0.9
	assert.InDelta(t, 16.0, ln.Savings, eps)
	assert.InDelta(t, 160.0, sum.Subtotal, eps)
	assert.InDelta(t, 16.0, sum.TotalSavings, eps)
	assert.InDelta(t, 144.0, sum.GrandTotal, eps)
}

func TestQuoteDirectTier(t *testing.T) {
	sum, err := Quote(directClient(), []Line{{Product: jump(), Quantity: 2, Discount: 10}})
	require.NoError(t, err)
	assert.InDelta(t, 100, sum.Lines[0].UnitPrice, eps, "direct clients pay the retail price")
	assert.InDelta(t, 180.0, sum.GrandTotal, eps)
}

func TestQuoteRejections(t *testing.T) {
	tests := []struct {
		name    string
		client  domain.Client
		lines   []Line
		wantErr error
	}{
		{"missing client", domain.Client{}, []Line{{Product: jump(), Quantity: 1}}, ErrNoClient},
		{"empty lines", b2bClient(), nil, ErrNoLines},
		{"zero quantity", b2bClient(), []Line{{Product: jump(), Quantity: 0}}, ErrBadQuantity},
		{"negative quantity", b2bClient(), []Line{{Product: jump(), Quantity: -3}}, ErrBadQuantity},
		{"discount above 100", b2bClient(), []Line{{Product: jump(), Quantity: 1, Discount: 101}}, ErrBadDiscount},
		{"negative discount", b2bClient(), []Line{{Product: jump(), Quantity: 1, Discount: -1}}, ErrBadDiscount},
		{
			"negative price",
			b2bClient(),
			[]Line{{Product: domain.Product{ID: "p2", Price: -5}, Quantity: 1}},
			ErrNegativePrice,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Quote(tt.client, tt.lines)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, sum.Lines)
			assert.Zero(t, sum.GrandTotal)
		})
	}
}

func TestLineTotalBounds(t *testing.T) {
	for _, d := range []float64{0, 10, 33.5, 50, 99, 100} {
		for _, q := range []int{1, 2, 7} {
			total := LineTotal(100, q, d)
			assert.InDelta(t, 100*float64(q)*(1-d/100), total, eps)
			assert.GreaterOrEqual(t, total, 0.0)
			assert.LessOrEqual(t, total, 100*float64(q)+eps)
		}
	}
}

func TestAggregateIdentity(t *testing.T) {
	lines := []Line{
		{Product: jump(), Quantity: 3, Discount: 12.5},
		{Product: domain.Product{ID: "p2", Price: 799.99, B2BPrice: 599.99}, Quantity: 1, Discount: 0},
		{Product: domain.Product{ID: "p3", Price: 299.99, B2BPrice: 199.99}, Quantity: 5, Discount: 100},
	}
	sum, err := Quote(b2bClient(), lines)
	require.NoError(t, err)
	assert.True(t, math.Abs(sum.GrandTotal-(sum.Subtotal-sum.TotalSavings)) < eps)

	var lineTotals float64
	for _, ln := range sum.Lines {
		lineTotals += ln.Total
	}
	assert.InDelta(t, sum.GrandTotal, lineTotals, eps)
}

func TestUnitPriceTierSelection(t *testing.T) {
	p := jump()
	assert.Equal(t, 80.0, UnitPrice(b2bClient(), p))
	assert.Equal(t, 100.0, UnitPrice(directClient(), p))
}
