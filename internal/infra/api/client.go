// Package api implements the repositories on top of the building management REST API.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/go-resty/resty/v2"
)

// Client performs authenticated calls against the backend.
type Client struct {
	http    *resty.Client
	session service.SessionContext
	logger  *slog.Logger
}

// NewClient creates a backend client. Retries are disabled: every retry is operator-initiated.
func NewClient(cfg *config.Config, session service.SessionContext, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Backend.BaseURL, "/")).
		SetTimeout(cfg.Backend.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		session: session,
		logger:  logger,
	}
}

type request struct {
	method    string
	path      string
	query     map[string]string
	body      any
	anonymous bool
}

// do executes the request and maps failures onto domain errors.
// A 401 on an authenticated call tears the session down before returning ErrSessionExpired,
// unless the session has been replaced since the request was sent.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	var token string
	r := c.http.R().SetContext(ctx)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		r.SetHeader(deliverycontext.HeaderXRequestID, requestID)
	}
	if !req.anonymous {
		token = c.session.Token()
		if token == "" {
			return nil, domainerrors.ErrNotAuthenticated
		}
		r.SetAuthToken(token)
	}
	if len(req.query) > 0 {
		r.SetQueryParams(req.query)
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		logger.Warn("Backend request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewUpstreamError(errors.WithStack(err), 0, "")
	}

	status := resp.StatusCode()
	if status == http.StatusUnauthorized && !req.anonymous {
		torn, err := c.session.TeardownIf(ctx, token)
		if err != nil {
			logger.Error("Failed to tear session down", slog.Any("error", err))
		}
		logger.Warn("Backend rejected session token",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Bool("session_torn_down", torn),
		)

		return nil, domainerrors.ErrSessionExpired
	}

	if !resp.IsSuccess() {
		message := messageFromBody(resp.Body())
		logger.Info("Backend returned error status",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("status", status),
			slog.String("message", message),
		)

		return nil, domainerrors.NewUpstreamError(nil, status, message)
	}

	return resp.Body(), nil
}
