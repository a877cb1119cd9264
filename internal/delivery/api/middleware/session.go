package middleware

import (
	"log/slog"
	"time"

	"portal/internal/delivery/api/response"
	deliverycontext "portal/internal/delivery/context"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes that need a signed-in operator.
type SessionMiddleware struct {
	session service.SessionContext
	logger  *slog.Logger
	now     func() time.Time
}

func NewSessionMiddleware(session service.SessionContext, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// RequireSession rejects requests while signed out. A session whose token has
// expired is torn down before the request reaches the backend.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		current := m.session.Current()
		if current == nil {
			return response.Unauthorized(c, domainerrors.ErrNotAuthenticated.ErrorCode(), domainerrors.ErrNotAuthenticated.Message())
		}

		if current.Expired(m.now()) {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Info("Session token expired, signing out", slog.Time("expires_at", current.ExpiresAt))
			if _, err := m.session.TeardownIf(c.Request().Context(), current.Token); err != nil {
				logger.Warn("Failed to clear expired session", slog.Any("error", err))
			}

			return response.Unauthorized(c, domainerrors.ErrSessionExpired.ErrorCode(), domainerrors.ErrSessionExpired.Message())
		}

		if current.User != nil {
			deliverycontext.SetOperator(c, current.User)
		}

		return next(c)
	}
}
