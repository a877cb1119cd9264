package handler

import (
	"net/http"
	"strconv"

	"portal/internal/delivery/api/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
}

// GeocodeHandler feeds address suggestions to the address form.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
}

func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
	}
}

// AutocompleteRequest carries the current contents of the address field.
type AutocompleteRequest struct {
	Query string `json:"query"`
}

// Search looks a query up immediately. Lookup failures yield an empty list.
func (h *GeocodeHandler) Search(c echo.Context) error {
	candidates := h.geocodeUC.Search(c.Request().Context(), c.QueryParam("q"))

	return response.Success(c, http.StatusOK, candidates)
}

// Autocomplete records a keystroke. Suggestions arrive later through Candidates.
func (h *GeocodeHandler) Autocomplete(c echo.Context) error {
	var req AutocompleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid autocomplete input")
	}

	return response.Success(c, http.StatusAccepted, h.geocodeUC.Autocomplete(req.Query))
}

func (h *GeocodeHandler) Candidates(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.geocodeUC.Candidates())
}

// SelectCandidate returns the form fields of the chosen suggestion.
func (h *GeocodeHandler) SelectCandidate(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid suggestion index")
	}

	form, err := h.geocodeUC.SelectCandidate(index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}
