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

type clientPayload struct {
	Name      string            `json:"name" validate:"required,min=1,max=200"`
	Email     string            `json:"email" validate:"required,email"`
	Phone     string            `json:"phone" validate:"required"`
	Type      domain.ClientType `json:"type" validate:"required"`
	Company   *string           `json:"company,omitempty"`
	VATNumber *string           `json:"vatNumber,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

func registerClientRoutes() {
	webserver.ApiGET("/crm/clients", listClients)
	webserver.ApiGET("/crm/clients/:id", getClient)
	webserver.ApiPOST("/crm/clients", createClient)
	webserver.ApiPUT("/crm/clients/:id", updateClient)
	webserver.ApiDELETE("/crm/clients/:id", deleteClient)
}

func listClients(c echo.Context) error {
	page, pageSize := parsePagination(c)

	rows := getStore(c).Clients()
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		filtered := make([]domain.Client, 0, len(rows))
		for _, cl := range rows {
			if containsFold(cl.Name, q) || containsFold(cl.Email, q) {
				filtered = append(filtered, cl)
			}
		}
		rows = filtered
	}
	if t := strings.TrimSpace(c.QueryParam("type")); t != "" {
		filtered := make([]domain.Client, 0, len(rows))
		for _, cl := range rows {
			if string(cl.Type) == t {
				filtered = append(filtered, cl)
			}
		}
		rows = filtered
	}

	total := int64(len(rows))
	return paged(c, pageSlice(rows, page, pageSize), total, page, pageSize)
}

func getClient(c echo.Context) error {
	cl, found := getStore(c).ClientByID(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found", nil)
	}
	return ok(c, cl)
}

func createClient(c echo.Context) error {
	var payload clientPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse client", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Client validation failed", err.Error())
	}

	now := time.Now().UTC()
	cl := domain.Client{
		ID:        common.NewID(),
		Name:      strings.TrimSpace(payload.Name),
		Email:     strings.TrimSpace(payload.Email),
		Phone:     strings.TrimSpace(payload.Phone),
		Type:      payload.Type,
		Company:   payload.Company,
		VATNumber: payload.VATNumber,
		Notes:     payload.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	getStore(c).AddClient(cl)
	return ok(c, cl)
}

func updateClient(c echo.Context) error {
	id := c.Param("id")
	st := getStore(c)
	if _, found := st.ClientByID(id); !found {
		return fail(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found", nil)
	}

	var patch domain.ClientPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse client", err.Error())
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name must not be empty", nil)
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Email must not be empty", nil)
	}

	st.UpdateClient(id, patch)
	cl, _ := st.ClientByID(id)
	return ok(c, cl)
}

// deleteClient removes the client; deals referencing it are removed by the
// store's cascade rule.
func deleteClient(c echo.Context) error {
	id := c.Param("id")
	getStore(c).DeleteClient(id)
	return ok(c, map[string]interface{}{"id": id})
}
