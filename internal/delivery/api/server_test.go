package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal/config"
	"portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/router"
	"portal/internal/delivery/api/router/handler"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	mockservice "portal/internal/mocks/service"
	mockusecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testConsole struct {
	echo      *echo.Echo
	session   *mockservice.MockSessionContext
	catalogUC *mockusecase.MockCatalogUsecase
	addressUC *mockusecase.MockAddressUsecase
}

func newTestConsole(t *testing.T) *testConsole {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	session := mockservice.NewMockSessionContext(t)
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	addressUC := mockusecase.NewMockAddressUsecase(t)

	params := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			SessionUC: mockusecase.NewMockSessionUsecase(t),
			Logger:    logger,
		}),
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{
			AddressUC:  addressUC,
			OccupantUC: mockusecase.NewMockOccupantUsecase(t),
			Logger:     logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC}),
		ExportHandler: handler.NewExportHandler(handler.ExportHandlerParams{
			ExportUC: mockusecase.NewMockExportUsecase(t),
			Logger:   logger,
		}),
		GeocodeHandler:    handler.NewGeocodeHandler(handler.GeocodeHandlerParams{GeocodeUC: mockusecase.NewMockGeocodeUsecase(t)}),
		SessionMiddleware: middleware.NewSessionMiddleware(session, logger),
	}

	return &testConsole{
		echo:      NewEcho(cfg, logger, params),
		session:   session,
		catalogUC: catalogUC,
		addressUC: addressUC,
	}
}

func (tc *testConsole) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	tc.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthIsPublic(t *testing.T) {
	tc := newTestConsole(t)

	rec := tc.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_GuardedRouteRequiresSession(t *testing.T) {
	tc := newTestConsole(t)
	tc.session.EXPECT().Current().Return(nil)

	rec := tc.do(http.MethodGet, "/addresses", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestServer_ListAddressesSignedIn(t *testing.T) {
	tc := newTestConsole(t)
	tc.session.EXPECT().Current().Return(&entity.Session{Token: "t", User: &entity.User{ID: 1, Role: entity.RoleAdmin}})
	tc.catalogUC.EXPECT().ListAddresses(mock.Anything, repository.ListQuery{Page: 1, Limit: 10}).
		Return(&usecase.SliceState[entity.Address]{Items: []entity.Address{{ID: 1, Address: "Khreshchatyk 1", City: "Kyiv"}}, Loaded: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addresses?page=1&limit=10", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	tc.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
	assert.Contains(t, rec.Body.String(), "Khreshchatyk 1")
}

func TestServer_StaticAddressRoutesWinOverID(t *testing.T) {
	tc := newTestConsole(t)
	tc.session.EXPECT().Current().Return(&entity.Session{Token: "t"})
	tc.addressUC.EXPECT().Details().Return(&usecase.AddressDetails{})

	rec := tc.do(http.MethodGet, "/addresses/details", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"open":false`)
}

func TestServer_UnknownRoute(t *testing.T) {
	tc := newTestConsole(t)

	rec := tc.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
