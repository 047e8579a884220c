package adminapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bjo163/showjumps-crm/internal/domain"
	"github.com/bjo163/showjumps-crm/internal/webserver"
	"github.com/bjo163/showjumps-crm/pkg/common"
)

type productPayload struct {
	Name        string                 `json:"name" validate:"required,min=1,max=200"`
	Description string                 `json:"description"`
	Price       float64                `json:"price" validate:"gte=0"`
	B2BPrice    float64                `json:"b2bPrice" validate:"gte=0"`
	Image       string                 `json:"image"`
	Category    domain.ProductCategory `json:"category" validate:"required"`
	SKU         string                 `json:"sku" validate:"required,min=1,max=64"`
	Stock       int                    `json:"stock" validate:"gte=0"`
}

// registerProductRoutes registers catalog CRUD endpoints.
func registerProductRoutes() {
	webserver.ApiGET("/crm/products", listProducts)
	webserver.ApiGET("/crm/products/:id", getProduct)
	webserver.ApiPOST("/crm/products", createProduct)
	webserver.ApiPUT("/crm/products/:id", updateProduct)
	webserver.ApiDELETE("/crm/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	rows := getStore(c).Products()

	// Filters: q matches name or SKU, category is an exact match.
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		filtered := make([]domain.Product, 0, len(rows))
		for _, p := range rows {
			if containsFold(p.Name, q) || containsFold(p.SKU, q) {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
	}
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		filtered := make([]domain.Product, 0, len(rows))
		for _, p := range rows {
			if string(p.Category) == cat {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
	}

	// Sorting: whitelisted fields only.
	sortField := strings.TrimSpace(c.QueryParam("sort"))
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if sortField != "" {
		sorted := make([]domain.Product, len(rows))
		copy(sorted, rows)
		less := func(a, b domain.Product) bool { return a.ID < b.ID }
		switch sortField {
		case "name":
			less = func(a, b domain.Product) bool { return a.Name < b.Name }
		case "price":
			less = func(a, b domain.Product) bool { return a.Price < b.Price }
		case "created_at":
			less = func(a, b domain.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			if order == "DESC" {
				return less(sorted[j], sorted[i])
			}
			return less(sorted[i], sorted[j])
		})
		rows = sorted
	}

	total := int64(len(rows))
	return paged(c, pageSlice(rows, page, pageSize), total, page, pageSize)
}

func getProduct(c echo.Context) error {
	p, found := getStore(c).ProductByID(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Product validation failed", err.Error())
	}

	now := time.Now().UTC()
	p := domain.Product{
		ID:          common.NewID(),
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Price:       payload.Price,
		B2BPrice:    payload.B2BPrice,
		Image:       strings.TrimSpace(payload.Image),
		Category:    payload.Category,
		SKU:         strings.TrimSpace(payload.SKU),
		Stock:       payload.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	getStore(c).AddProduct(p)
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id := c.Param("id")
	st := getStore(c)
	if _, found := st.ProductByID(id); !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var patch domain.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name must not be empty", nil)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must not be negative", nil)
	}
	if patch.B2BPrice != nil && *patch.B2BPrice < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "B2B price must not be negative", nil)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Stock must not be negative", nil)
	}

	st.UpdateProduct(id, patch)
	p, _ := st.ProductByID(id)
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	getStore(c).DeleteProduct(id)
	return ok(c, map[string]interface{}{"id": id})
}
