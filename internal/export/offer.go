// Package export renders a finished offer summary into a downloadable
// workbook.
package export

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/bjo163/showjumps-crm/internal/pricing"
	"github.com/bjo163/showjumps-crm/pkg/common"
)

const sheet = "Sheet1"

// Filename derives the deterministic attachment name from the customer name:
// every run of non-alphanumeric characters becomes a single underscore.
func Filename(customerName string) string {
	slug := common.Slugify(customerName, "_")
	if slug == "" {
		return "offer.xlsx"
	}
	return fmt.Sprintf("offer_%s.xlsx", slug)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// OfferWorkbook lays out the offer: a header block with the customer
// identity, one row per line item and a totals footer.
func OfferWorkbook(sum pricing.Summary) *excelize.File {
	f := excelize.NewFile()

	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "F", 14)

	f.SetCellValue(sheet, "A1", "Product Offer")
	f.SetCellValue(sheet, "A2", "Prepared for:")
	f.SetCellValue(sheet, "B2", sum.Client.Name)
	row := 3
	if sum.Client.Company != nil {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Company:")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), *sum.Client.Company)
		row++
	}
	if sum.Client.VATNumber != nil {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "VAT:")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), *sum.Client.VATNumber)
		row++
	}

	row++
	headers := []string{"Product", "SKU", "Quantity", "Unit Price", "Discount %", "Line Total"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%c%d", 'A'+i, row), h)
	}
	row++

	for _, ln := range sum.Lines {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), ln.Product.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), ln.Product.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), ln.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), money(ln.UnitPrice))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), money(ln.Discount))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money(ln.Total))
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Subtotal:")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money(sum.Subtotal))
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Savings:")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money(sum.TotalSavings))
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total:")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money(sum.GrandTotal))

	return f
}

// WriteOffer streams the offer workbook to w.
func WriteOffer(w io.Writer, sum pricing.Summary) error {
	return OfferWorkbook(sum).Write(w)
}
