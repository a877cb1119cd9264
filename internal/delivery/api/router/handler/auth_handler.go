package handler

import (
	"log/slog"
	"net/http"
	"time"

	"portal/internal/delivery/api/response"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves operator sign-in and sign-out.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionView is what the dashboard learns about the session. Tokens stay server side.
type SessionView struct {
	User      *entity.User `json:"user"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

func newSessionView(session *entity.Session) *SessionView {
	view := &SessionView{User: session.User}
	if !session.ExpiresAt.IsZero() {
		expiresAt := session.ExpiresAt
		view.ExpiresAt = &expiresAt
	}

	return view
}

// Login signs the operator in against the backend.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Operator signed in", slog.Int64("user_id", operatorID(session.User)))

	return response.Success(c, http.StatusOK, newSessionView(session))
}

// Logout clears the session everywhere it is stored.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"signedOut": true})
}

// Me returns the signed-in operator.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.sessionUC.Me(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func operatorID(user *entity.User) int64 {
	if user == nil {
		return 0
	}

	return user.ID
}
