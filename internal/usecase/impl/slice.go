// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"
)

// ErrSuperseded is returned by a fetch whose response arrived after a newer fetch was issued.
// The response is discarded and the slice state is left untouched.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// FetchFunc reads one page of a remote collection.
type FetchFunc[T any] func(ctx context.Context, query repository.ListQuery) (*entity.Page[T], error)

// Slice is a normalized client-side cache of one remote collection.
// Every fetch is tagged with a generation; only the latest one may write the state.
type Slice[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
	state      usecase.SliceState[T]
	listeners  []func(items []T)
}

// NewSlice creates a slice reading through fetch.
func NewSlice[T any](name string, fetch FetchFunc[T], logger *slog.Logger) *Slice[T] {
	return &Slice[T]{
		name:   name,
		fetch:  fetch,
		logger: logger.With(slog.String("slice", name)),
		state:  usecase.SliceState[T]{Query: repository.ListQuery{}.Normalize()},
	}
}

// NewAddressSlice creates the addresses slice, reset on every session teardown.
func NewAddressSlice(repo repository.AddressRepository, session service.SessionContext, logger *slog.Logger) *Slice[entity.Address] {
	s := NewSlice[entity.Address]("addresses", repo.ListAddresses, logger)
	session.OnTeardown(s.Reset)

	return s
}

// NewUserSlice creates the users slice, reset on every session teardown.
func NewUserSlice(repo repository.UserRepository, session service.SessionContext, logger *slog.Logger) *Slice[entity.User] {
	s := NewSlice[entity.User]("users", repo.ListUsers, logger)
	session.OnTeardown(s.Reset)

	return s
}

// NewDeviceSlice creates the devices slice, reset on every session teardown.
func NewDeviceSlice(repo repository.DeviceRepository, session service.SessionContext, logger *slog.Logger) *Slice[entity.Device] {
	s := NewSlice[entity.Device]("devices", repo.ListDevices, logger)
	session.OnTeardown(s.Reset)

	return s
}

// Fetch loads the page selected by query and stores it.
// It returns ErrSuperseded when another fetch or a reset happened while the request was in flight.
func (s *Slice[T]) Fetch(ctx context.Context, query repository.ListQuery) (usecase.SliceState[T], error) {
	query = query.Normalize()

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.state.Loading = true
	s.state.Query = query
	s.mu.Unlock()

	page, err := s.fetch(ctx, query)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug("Discarding superseded response", slog.Uint64("generation", generation))

		return s.State(), ErrSuperseded
	}

	s.state.Loading = false
	if err != nil {
		s.state.Error = errorMessage(err)
		state := s.snapshot()
		s.mu.Unlock()

		return state, err
	}

	s.state.Items = page.Items
	s.state.Pagination = page.Pagination
	s.state.Error = ""
	s.state.Loaded = true
	state := s.snapshot()
	listeners := append([]func([]T){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state.Items)
	}

	return state, nil
}

// Refresh repeats the last fetch.
func (s *Slice[T]) Refresh(ctx context.Context) (usecase.SliceState[T], error) {
	s.mu.Lock()
	query := s.state.Query
	s.mu.Unlock()

	return s.Fetch(ctx, query)
}

// Mutate runs a write against the backend and refreshes the slice when it succeeds.
// A failed refresh is recorded in the slice state and logged; it does not fail the mutation.
func (s *Slice[T]) Mutate(ctx context.Context, write func(ctx context.Context) error) error {
	if err := write(ctx); err != nil {
		return err
	}

	if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
		s.logger.Warn("Refresh after mutation failed", slog.Any("error", err))
	}

	return nil
}

// State returns a copy of the current state.
func (s *Slice[T]) State() usecase.SliceState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Find returns the first cached item matching match.
func (s *Slice[T]) Find(match func(item *T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if match(&s.state.Items[i]) {
			return s.state.Items[i], true
		}
	}

	var zero T

	return zero, false
}

// OnLoaded registers a callback run with the items of every successful fetch.
func (s *Slice[T]) OnLoaded(fn func(items []T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// Reset clears the cache and invalidates requests in flight.
func (s *Slice[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.state = usecase.SliceState[T]{Query: repository.ListQuery{}.Normalize()}
}

func (s *Slice[T]) snapshot() usecase.SliceState[T] {
	state := s.state
	if s.state.Items != nil {
		state.Items = append([]T(nil), s.state.Items...)
	}
	if s.state.Pagination != nil {
		pagination := *s.state.Pagination
		state.Pagination = &pagination
	}

	return state
}

// errorMessage extracts the operator-facing text of an error.
func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
