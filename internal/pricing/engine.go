// Package pricing computes offer summaries: tier selection, per-line
// discounts and aggregate totals. Everything here is a pure function of its
// inputs; nothing in the store is read or written.
package pricing

import (
	"errors"
	"fmt"

	"github.com/bjo163/showjumps-crm/internal/domain"
)

var (
	ErrNoClient      = errors.New("offer requires a client")
	ErrNoLines       = errors.New("offer requires at least one line item")
	ErrBadQuantity   = errors.New("line quantity must be at least 1")
	ErrBadDiscount   = errors.New("line discount must be between 0 and 100")
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Line is one candidate offer position: a product snapshot, a quantity and a
// discount rate in percent.
type Line struct {
	Product  domain.Product
	Quantity int
	Discount float64
}

// QuotedLine is a priced line of a finished offer summary.
type QuotedLine struct {
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	Discount  float64        `json:"discountRate"`
	UnitPrice float64        `json:"unitPrice"`
	Gross     float64        `json:"gross"`
	Total     float64        `json:"total"`
	Savings   float64        `json:"savings"`
}

// Summary is the monetary result of an offer. The identity
// GrandTotal = Subtotal - TotalSavings holds up to float rounding.
type Summary struct {
	Client       domain.Client `json:"client"`
	Lines        []QuotedLine  `json:"lines"`
	Subtotal     float64       `json:"subtotal"`
	TotalSavings float64       `json:"totalSavings"`
	GrandTotal   float64       `json:"grandTotal"`
}

// UnitPrice selects the price tier for a client: the B2B price applies only
// when the client type is exactly b2b, retail otherwise.
func UnitPrice(c domain.Client, p domain.Product) float64 {
	if c.Type == domain.ClientB2B {
		return p.B2BPrice
	}
	return p.Price
}

// LineTotal computes price*qty*(1-d/100).
func LineTotal(price float64, qty int, discount float64) float64 {
	return price * float64(qty) * (1 - discount/100)
}

// LineSavings computes price*qty*(d/100).
func LineSavings(price float64, qty int, discount float64) float64 {
	return price * float64(qty) * (discount / 100)
}

func validateLine(i int, ln Line) error {
	if ln.Quantity < 1 {
		return fmt.Errorf("%w (line %d)", ErrBadQuantity, i+1)
	}
	if ln.Discount < 0 || ln.Discount > 100 {
		return fmt.Errorf("%w (line %d)", ErrBadDiscount, i+1)
	}
	if ln.Product.Price < 0 || ln.Product.B2BPrice < 0 {
		return fmt.Errorf("%w (line %d)", ErrNegativePrice, i+1)
	}
	return nil
}

// Quote prices the candidate offer. Invalid input is rejected, never coerced;
// on error the returned summary is zero.
func Quote(client domain.Client, lines []Line) (Summary, error) {
	if client.ID == "" {
		return Summary{}, ErrNoClient
	}
	if len(lines) == 0 {
		return Summary{}, ErrNoLines
	}

	sum := Summary{Client: client, Lines: make([]QuotedLine, 0, len(lines))}
	for i, ln := range lines {
		if err := validateLine(i, ln); err != nil {
			return Summary{}, err
		}
		unit := UnitPrice(client, ln.Product)
		gross := unit * float64(ln.Quantity)
		q := QuotedLine{
			Product:   ln.Product,
			Quantity:  ln.Quantity,
			Discount:  ln.Discount,
			UnitPrice: unit,
			Gross:     gross,
			Total:     LineTotal(unit, ln.Quantity, ln.Discount),
			Savings:   LineSavings(unit, ln.Quantity, ln.Discount),
		}
		sum.Lines = append(sum.Lines, q)
		sum.Subtotal += q.Gross
		sum.TotalSavings += q.Savings
	}
	sum.GrandTotal = sum.Subtotal - sum.TotalSavings
	return sum, nil
}
