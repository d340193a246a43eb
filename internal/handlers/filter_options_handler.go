package handlers

import (
	"net/http"

	"sales-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// FilterOptionsHandler serves the distinct filter values offered to clients
// for building filter UIs.
type FilterOptionsHandler struct {
	options services.FilterOptionsServiceInterface
}

// NewFilterOptionsHandler creates a new filter options handler
func NewFilterOptionsHandler(options services.FilterOptionsServiceInterface) *FilterOptionsHandler {
	return &FilterOptionsHandler{options: options}
}

// GetFilterOptions serves GET /api/filter-options. Reads are O(1) against
// the cached snapshot; a cold cache refreshes synchronously first.
func (h *FilterOptionsHandler) GetFilterOptions(c echo.Context) error {
	options, err := h.options.Options(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, options)
}
