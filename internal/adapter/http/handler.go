package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/gp-senegal/smart-search/internal/adapter/http/response"
	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/usecase"
)

// SearchHandler handles HTTP requests for ad search endpoints.
type SearchHandler struct {
	resolver usecase.SearchResolver
}

// NewSearchHandler creates a new SearchHandler with the given resolver.
func NewSearchHandler(resolver usecase.SearchResolver) *SearchHandler {
	return &SearchHandler{
		resolver: resolver,
	}
}

// SearchAds handles POST /api/v1/ads/search
//
// @Summary Search traveler ads
// @Description Search ads with progressive relaxation: exact matches first, then geographic proximity, date proximity, and a package-type fallback
// @Tags ads
// @Accept json
// @Produce json
// @Param request body SearchAdsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown city"
// @Failure 503 {object} response.ErrorDetail "Geocoding service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/ads/search [post]
func (h *SearchHandler) SearchAds(c echo.Context) error {
	var req SearchAdsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	outcome, err := h.resolver.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(criteria, outcome))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	// An unresolvable city is the caller's problem, not ours.
	if errors.Is(err, domain.ErrCityNotFound) {
		return response.CityNotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrGeocoderUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}
