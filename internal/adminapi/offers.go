package adminapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bjo163/showjumps-crm/internal/export"
	"github.com/bjo163/showjumps-crm/internal/pricing"
	"github.com/bjo163/showjumps-crm/internal/webserver"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type offerLinePayload struct {
	ProductID    string  `json:"productId" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gte=1"`
	DiscountRate float64 `json:"discountRate" validate:"gte=0,lte=100"`
}

type offerPayload struct {
	ClientID string             `json:"clientId" validate:"required"`
	Lines    []offerLinePayload `json:"lines" validate:"required,min=1,dive"`
}

func registerOfferRoutes() {
	webserver.ApiPOST("/crm/offers/quote", quoteOffer)
	webserver.ApiPOST("/crm/offers/export", exportOffer)
}

// bindOffer parses and prices the candidate offer. On failure the error
// response has already been written and done is false.
func bindOffer(c echo.Context) (sum pricing.Summary, done bool, err error) {
	var payload offerPayload
	if err := c.Bind(&payload); err != nil {
		return sum, false, fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse offer", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return sum, false, fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Offer validation failed", err.Error())
	}

	st := getStore(c)
	client, found := st.ClientByID(payload.ClientID)
	if !found {
		return sum, false, fail(c, http.StatusBadRequest, "CLIENT_NOT_FOUND", "Offer client does not exist", payload.ClientID)
	}

	lines := make([]pricing.Line, 0, len(payload.Lines))
	for _, ln := range payload.Lines {
		product, found := st.ProductByID(ln.ProductID)
		if !found {
			return sum, false, fail(c, http.StatusBadRequest, "PRODUCT_NOT_FOUND", "Offer line references an unknown product", ln.ProductID)
		}
		lines = append(lines, pricing.Line{
			Product:  product,
			Quantity: ln.Quantity,
			Discount: ln.DiscountRate,
		})
	}

	sum, qerr := pricing.Quote(client, lines)
	if qerr != nil {
		return sum, false, fail(c, http.StatusBadRequest, "INVALID_OFFER", "Offer rejected", qerr.Error())
	}
	return sum, true, nil
}

// quoteOffer prices an offer without touching any stored entity.
func quoteOffer(c echo.Context) error {
	sum, done, err := bindOffer(c)
	if !done {
		return err
	}
	return ok(c, sum)
}

// exportOffer prices an offer and streams the workbook as a download named
// deterministically from the client name.
func exportOffer(c echo.Context) error {
	sum, done, err := bindOffer(c)
	if !done {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteOffer(&buf, sum); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to render offer workbook", err.Error())
	}

	name := export.Filename(sum.Client.Name)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
