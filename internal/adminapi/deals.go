package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bjo163/showjumps-crm/internal/domain"
	"github.com/bjo163/showjumps-crm/internal/webserver"
	"github.com/bjo163/showjumps-crm/pkg/common"
)

type dealLinePayload struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type dealPayload struct {
	ClientID string                `json:"clientId" validate:"required"`
	Lines    []dealLinePayload     `json:"products" validate:"dive"`
	Stage    *domain.PipelineStage `json:"stage,omitempty"`
	Value    float64               `json:"value" validate:"gte=0"`
	Notes    string                `json:"notes"`
}

type dealStagePayload struct {
	Stage domain.PipelineStage `json:"stage" validate:"required"`
}

func registerDealRoutes() {
	webserver.ApiGET("/crm/deals", listDeals)
	webserver.ApiGET("/crm/deals/:id", getDeal)
	webserver.ApiPOST("/crm/deals", createDeal)
	webserver.ApiPUT("/crm/deals/:id", updateDeal)
	webserver.ApiPUT("/crm/deals/:id/stage", moveDealStage)
	webserver.ApiDELETE("/crm/deals/:id", deleteDeal)
}

func listDeals(c echo.Context) error {
	page, pageSize := parsePagination(c)

	st := getStore(c)
	var rows []domain.Deal
	if stage := strings.TrimSpace(c.QueryParam("stage")); stage != "" {
		ps := domain.PipelineStage(stage)
		if !ps.Valid() {
			return fail(c, http.StatusBadRequest, "INVALID_STAGE", "Unknown pipeline stage", stage)
		}
		rows = st.DealsByStage(ps)
	} else {
		rows = st.Deals()
	}
	if clientID := strings.TrimSpace(c.QueryParam("clientId")); clientID != "" {
		filtered := make([]domain.Deal, 0, len(rows))
		for _, d := range rows {
			if d.ClientID == clientID {
				filtered = append(filtered, d)
			}
		}
		rows = filtered
	}

	total := int64(len(rows))
	return paged(c, pageSlice(rows, page, pageSize), total, page, pageSize)
}

func getDeal(c echo.Context) error {
	d, found := getStore(c).DealByID(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found", nil)
	}
	return ok(c, d)
}

// createDeal adds a lead. The stage defaults to lead when omitted; the client
// must exist so the new deal is never born orphaned.
func createDeal(c echo.Context) error {
	var payload dealPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse deal", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Deal validation failed", err.Error())
	}

	st := getStore(c)
	if _, found := st.ClientByID(payload.ClientID); !found {
		return fail(c, http.StatusBadRequest, "CLIENT_NOT_FOUND", "Deal client does not exist", payload.ClientID)
	}

	stage := domain.StageLead
	if payload.Stage != nil {
		stage = *payload.Stage
	}

	lines := make([]domain.DealLine, 0, len(payload.Lines))
	for _, ln := range payload.Lines {
		if _, found := st.ProductByID(ln.ProductID); !found {
			return fail(c, http.StatusBadRequest, "PRODUCT_NOT_FOUND", "Deal line references an unknown product", ln.ProductID)
		}
		lines = append(lines, domain.DealLine{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}

	now := time.Now().UTC()
	d := domain.Deal{
		ID:        common.NewID(),
		ClientID:  payload.ClientID,
		Lines:     lines,
		Stage:     stage,
		Value:     payload.Value,
		Notes:     payload.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.AddDeal(d)
	return ok(c, d)
}

func updateDeal(c echo.Context) error {
	id := c.Param("id")
	st := getStore(c)
	if _, found := st.DealByID(id); !found {
		return fail(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found", nil)
	}

	var patch domain.DealPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse deal", err.Error())
	}
	if patch.ClientID != nil {
		if _, found := st.ClientByID(*patch.ClientID); !found {
			return fail(c, http.StatusBadRequest, "CLIENT_NOT_FOUND", "Deal client does not exist", *patch.ClientID)
		}
	}
	if patch.Value != nil && *patch.Value < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Value must not be negative", nil)
	}
	if patch.Lines != nil {
		for _, ln := range *patch.Lines {
			if ln.Quantity < 1 {
				return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Line quantity must be at least 1", nil)
			}
		}
	}

	st.UpdateDeal(id, patch)
	d, _ := st.DealByID(id)
	return ok(c, d)
}

// moveDealStage reassigns the deal's pipeline stage. Moving onto the current
// stage is accepted and changes nothing, updatedAt included.
func moveDealStage(c echo.Context) error {
	id := c.Param("id")
	st := getStore(c)
	if _, found := st.DealByID(id); !found {
		return fail(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found", nil)
	}

	var payload dealStagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse stage", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Stage validation failed", err.Error())
	}

	st.UpdateDealStage(id, payload.Stage)
	d, _ := st.DealByID(id)
	return ok(c, d)
}

func deleteDeal(c echo.Context) error {
	id := c.Param("id")
	getStore(c).DeleteDeal(id)
	return ok(c, map[string]interface{}{"id": id})
}
