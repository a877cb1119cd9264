package handler

import (
	"net/http"

	"portal/internal/delivery/api/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the address, user and device tables.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
	}
}

func (h *CatalogHandler) ListAddresses(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
	}

	state, err := h.catalogUC.ListAddresses(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// ListUsers accepts an optional role filter.
func (h *CatalogHandler) ListUsers(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
	}

	state, err := h.catalogUC.ListUsers(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

func (h *CatalogHandler) ListDevices(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
	}

	state, err := h.catalogUC.ListDevices(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}
