package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/api/response"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Logger   *slog.Logger
}

// ExportHandler serves map links, QR codes and address downloads.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	logger   *slog.Logger
}

func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		exportUC: params.ExportUC,
		logger:   params.Logger,
	}
}

// MapLinkResponse carries the external map deep link.
type MapLinkResponse struct {
	URL string `json:"url"`
}

func (h *ExportHandler) MapLink(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	link, err := h.exportUC.MapLink(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MapLinkResponse{URL: link})
}

// MapQRCode returns the map link as a PNG image.
func (h *ExportHandler) MapQRCode(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	png, err := h.exportUC.MapQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ExportAddresses downloads every address as xlsx or geojson.
func (h *ExportHandler) ExportAddresses(c echo.Context) error {
	format := usecase.ExportFormat(c.Param("format"))

	doc, err := h.exportUC.ExportAddresses(c.Request().Context(), format)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Addresses exported",
		slog.String("format", string(format)),
		slog.Int("bytes", len(doc.Content)),
	)

	return response.Attachment(c, doc.Filename, doc.ContentType, doc.Content)
}
