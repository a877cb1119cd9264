package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authRepo repository.AuthRepository
	session  service.SessionContext
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthRepo repository.AuthRepository
	Session  service.SessionContext
	Logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authRepo: params.AuthRepo,
		session:  params.Session,
		logger:   params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a session and makes it the active one.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	credentials := entity.Credentials{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	}

	session, err := srv.authRepo.Login(ctx, credentials)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := srv.session.Establish(ctx, session); err != nil {
		return nil, errors.Wrap(err, "establish session")
	}

	current := srv.session.Current()
	if current == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "session not established")
	}

	srv.log(ctx).Info("Operator signed in", slog.Int64("user_id", userID(current)))

	return current, nil
}

// Logout clears the session everywhere. It succeeds when already signed out.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.session.Teardown(ctx); err != nil {
		return errors.Wrap(err, "teardown session")
	}

	srv.log(ctx).Info("Operator signed out")

	return nil
}

// Me returns the signed-in operator.
func (srv *sessionService) Me(ctx context.Context) (*entity.User, error) {
	current := srv.session.Current()
	if current == nil || current.User == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return current.User, nil
}

func userID(s *entity.Session) int64 {
	if s.User == nil {
		return 0
	}

	return s.User.ID
}
