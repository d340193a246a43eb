package handlers

import (
	"fmt"
	"net/http"

	"sales-insights/internal/dto"
	"sales-insights/internal/errors"
	"sales-insights/internal/models"
	"sales-insights/internal/services"
	"sales-insights/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the transaction search endpoint.
type TransactionHandler struct {
	queries services.TransactionQueryServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(queries services.TransactionQueryServiceInterface) *TransactionHandler {
	return &TransactionHandler{queries: queries}
}

// ListTransactions serves GET /api/transactions: paginated, filtered, sorted
// transaction search. Malformed parameters are client errors (400); backend
// failures surface as generic 500s.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var req dto.ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails(fmt.Sprintf("%v", he.Message)))
		}
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := validation.GetValidator().Struct(&req); err != nil {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails(validation.FormatErrors(err)...))
	}

	criteria, err := toFilterCriteria(&req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	result, err := h.queries.Query(c.Request().Context(), criteria)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromPageResult(result))
}

// toFilterCriteria converts a bound request into filter criteria, parsing
// the date bounds into typed values. Date parsing happens here, before the
// predicate builder ever runs, so an unparseable date is always a client
// error and never reaches the store.
func toFilterCriteria(req *dto.ListTransactionsRequest) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Search:            req.Search,
		Regions:           req.CustomerRegion,
		Genders:           req.Gender,
		ProductCategories: req.ProductCategory,
		Tags:              req.Tags,
		PaymentMethods:    req.PaymentMethod,
		AgeMin:            req.AgeMin,
		AgeMax:            req.AgeMax,
		SortBy:            req.SortBy,
		SortOrder:         req.SortOrder,
		Page:              req.Page,
		PageSize:          req.PageSize,
	}

	if req.DateFrom != "" {
		from, err := parseDateParam(req.DateFrom)
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("date_from: cannot parse %q", req.DateFrom)
		}
		criteria.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := parseDateParam(req.DateTo)
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("date_to: cannot parse %q", req.DateTo)
		}
		criteria.DateTo = &to
	}

	return criteria, nil
}
