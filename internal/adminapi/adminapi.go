// Package adminapi exposes the CRM over JSON: catalog, client book, deals,
// the pipeline board and the offer engine. Handlers translate requests into
// store operations and carry no business logic of their own.
package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bjo163/showjumps-crm/internal/store"
	"github.com/bjo163/showjumps-crm/internal/webserver"
)

// RegisterRoutes attaches every CRM endpoint to the web server. Call after
// webserver.Init.
func RegisterRoutes() {
	registerProductRoutes()
	registerClientRoutes()
	registerDealRoutes()
	registerPipelineRoutes()
	registerOfferRoutes()
}

func getStore(c echo.Context) *store.Store {
	return webserver.GetStore(c)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"msg":  "ok",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"details": details,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":    0,
		"msg":     "ok",
		"data":    rows,
		"total":   total,
		"page":    page,
		"perPage": pageSize,
	})
}

// parsePagination accepts both perPage (front-end) and pageSize (legacy).
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	for _, key := range []string{"perPage", "pageSize"} {
		if v := strings.TrimSpace(c.QueryParam(key)); v != "" {
			if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 500 {
				pageSize = ps
				break
			}
		}
	}
	return page, pageSize
}

// pageSlice cuts one page out of rows, tolerating out-of-range pages.
func pageSlice[T any](rows []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
