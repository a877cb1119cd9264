package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/api/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC  usecase.AddressUsecase
	OccupantUC usecase.OccupantUsecase
	Logger     *slog.Logger
}

// AddressHandler serves the address workflow: mutations, details view, managers and occupants.
type AddressHandler struct {
	addressUC  usecase.AddressUsecase
	occupantUC usecase.OccupantUsecase
	logger     *slog.Logger
}

func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC:  params.AddressUC,
		occupantUC: params.OccupantUC,
		logger:     params.Logger,
	}
}

// CreateAddress handles the create form. Field validation happens in the workflow.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var form usecase.AddressForm
	if err := c.Bind(&form); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	outcome, err := h.addressUC.CreateAddress(c.Request().Context(), &form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, outcome)
}

// EditAddress handles the edit form. Only changed fields reach the backend.
func (h *AddressHandler) EditAddress(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var form usecase.AddressForm
	if err := (&echo.DefaultBinder{}).BindBody(c, &form); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	outcome, err := h.addressUC.EditAddress(c.Request().Context(), id, &form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	outcome, err := h.addressUC.DeleteAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

func (h *AddressHandler) AssignManager(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var form usecase.AssignManagerForm
	if err := (&echo.DefaultBinder{}).BindBody(c, &form); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid manager input")
	}

	outcome, err := h.addressUC.AssignManager(c.Request().Context(), id, form.Manager())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

func (h *AddressHandler) UnassignManager(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	outcome, err := h.addressUC.UnassignManager(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// ManagerCandidates lists the users the manager picker offers.
func (h *AddressHandler) ManagerCandidates(c echo.Context) error {
	users, err := h.addressUC.ManagerCandidates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// OpenDetails opens the details view of an address and returns its state.
func (h *AddressHandler) OpenDetails(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	details, err := h.addressUC.OpenDetails(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// Details returns the current details view without loading anything.
func (h *AddressHandler) Details(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.addressUC.Details())
}

func (h *AddressHandler) CloseDetails(c echo.Context) error {
	h.addressUC.CloseDetails()

	return response.Success(c, http.StatusOK, h.addressUC.Details())
}

// Occupants lists the users subscribed to devices at the address.
func (h *AddressHandler) Occupants(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	result, err := h.occupantUC.ResolveOccupants(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
