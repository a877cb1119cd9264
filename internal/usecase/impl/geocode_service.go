package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// geocodeService implements the GeocodeUsecase interface.
// Autocomplete keeps one pending lookup; every keystroke bumps the generation so a
// superseded timer or late response is dropped.
type geocodeService struct {
	geocoder service.Geocoder
	limit    int
	minChars int
	debounce time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	state      usecase.AutocompleteState
}

// GeocodeServiceParams holds dependencies for GeocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Session  service.SessionContext
	Config   *config.Config
	Logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	cfg := params.Config.Geocoder

	srv := &geocodeService{
		geocoder: params.Geocoder,
		limit:    cfg.Limit,
		minChars: cfg.MinChars,
		debounce: cfg.Debounce,
		timeout:  cfg.Timeout,
		logger:   params.Logger,
		state:    usecase.AutocompleteState{Candidates: []entity.GeocodeCandidate{}},
	}
	params.Session.OnTeardown(srv.reset)

	return srv
}

// Autocomplete records the latest form input.
// Short input clears the candidates; otherwise one lookup runs after the debounce window.
func (srv *geocodeService) Autocomplete(query string) *usecase.AutocompleteState {
	query = strings.TrimSpace(query)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	if srv.timer != nil {
		srv.timer.Stop()
		srv.timer = nil
	}

	srv.state.Query = query
	if utf8.RuneCountInString(query) < srv.minChars {
		srv.state.Pending = false
		srv.state.Candidates = []entity.GeocodeCandidate{}

		return srv.stateLocked()
	}

	generation := srv.generation
	srv.state.Pending = true
	srv.timer = time.AfterFunc(srv.debounce, func() {
		srv.lookup(generation, query)
	})

	return srv.stateLocked()
}

func (srv *geocodeService) lookup(generation uint64, query string) {
	srv.mu.Lock()
	current := generation == srv.generation
	srv.mu.Unlock()
	if !current {
		return
	}

	ctx := context.Background()
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	candidates := srv.search(ctx, query)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if generation != srv.generation {
		srv.logger.Debug("Discarding superseded geocode response", slog.String("query", query))

		return
	}

	srv.timer = nil
	srv.state.Pending = false
	srv.state.Candidates = candidates
}

// Candidates returns the current autocomplete state.
func (srv *geocodeService) Candidates() *usecase.AutocompleteState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.stateLocked()
}

// SelectCandidate fills the address form from a candidate and closes the suggestion list.
func (srv *geocodeService) SelectCandidate(index int) (*usecase.AddressForm, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.state.Candidates) {
		return nil, domainerrors.ErrCandidateNotFound
	}

	candidate := srv.state.Candidates[index]
	form := &usecase.AddressForm{
		Address:   candidate.DisplayName,
		City:      candidate.City,
		Latitude:  formatCoordinate(candidate.Latitude),
		Longitude: formatCoordinate(candidate.Longitude),
	}

	srv.generation++
	if srv.timer != nil {
		srv.timer.Stop()
		srv.timer = nil
	}
	srv.state = usecase.AutocompleteState{Query: candidate.DisplayName, Candidates: []entity.GeocodeCandidate{}}

	return form, nil
}

// Search runs an immediate lookup with the same degradation rules as autocomplete.
func (srv *geocodeService) Search(ctx context.Context, query string) []entity.GeocodeCandidate {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < srv.minChars {
		return []entity.GeocodeCandidate{}
	}

	return srv.search(ctx, query)
}

// search never fails: errors are logged and yield no candidates.
func (srv *geocodeService) search(ctx context.Context, query string) []entity.GeocodeCandidate {
	candidates, err := srv.geocoder.Search(ctx, query, srv.limit)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Geocoding lookup failed",
			slog.String("query", query),
			slog.Any("error", err))

		return []entity.GeocodeCandidate{}
	}

	if len(candidates) > srv.limit {
		candidates = candidates[:srv.limit]
	}
	if candidates == nil {
		candidates = []entity.GeocodeCandidate{}
	}

	return candidates
}

// reset cancels the pending lookup and clears the autocomplete state.
func (srv *geocodeService) reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	if srv.timer != nil {
		srv.timer.Stop()
		srv.timer = nil
	}
	srv.state = usecase.AutocompleteState{Candidates: []entity.GeocodeCandidate{}}
}

func (srv *geocodeService) stateLocked() *usecase.AutocompleteState {
	state := srv.state
	state.Candidates = append([]entity.GeocodeCandidate{}, srv.state.Candidates...)

	return &state
}

// formatCoordinate renders a coordinate string with six decimals; unparseable input stays empty.
func formatCoordinate(s string) string {
	value, ok := parseCoordinate(s)
	if !ok {
		return ""
	}

	return strconv.FormatFloat(value, 'f', 6, 64)
}
