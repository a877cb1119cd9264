package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const managerCandidateLimit = 100

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	addresses   *Slice[entity.Address]
	users       *Slice[entity.User]
	validate    *validator.Validate
	logger      *slog.Logger

	mu         sync.Mutex
	details    usecase.AddressDetails
	generation uint64
	candidates []entity.User
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	Addresses   *Slice[entity.Address]
	Users       *Slice[entity.User]
	Session     service.SessionContext
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	srv := &addressService{
		addressRepo: params.AddressRepo,
		userRepo:    params.UserRepo,
		addresses:   params.Addresses,
		users:       params.Users,
		validate:    newFormValidator(),
		logger:      params.Logger,
	}

	srv.addresses.OnLoaded(srv.reconcileDetails)
	params.Session.OnTeardown(srv.reset)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress validates the form, submits it and refreshes the address list.
func (srv *addressService) CreateAddress(ctx context.Context, form *usecase.AddressForm) (*usecase.Outcome, error) {
	valid, err := validateAddressForm(srv.validate, form)
	if err != nil {
		return nil, err
	}

	draft := &entity.AddressDraft{
		Address:   valid.Address,
		City:      valid.City,
		Latitude:  parseOptionalFloat(valid.Latitude),
		Longitude: parseOptionalFloat(valid.Longitude),
		ManagerID: usecase.ParseManagerID(valid.ManagerID),
	}

	var created *entity.Address
	err = srv.addresses.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = srv.addressRepo.CreateAddress(ctx, draft)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "create address")
	}

	srv.log(ctx).Info("Address created", slog.String("city", draft.City))

	return &usecase.Outcome{
		Address: created,
		Notice:  usecase.Notice{Level: usecase.NoticeSuccess, Message: "Address created"},
	}, nil
}

// EditAddress submits the minimal diff between the form and the current address.
// An empty diff short-circuits without a network call.
func (srv *addressService) EditAddress(ctx context.Context, id int64, form *usecase.AddressForm) (*usecase.Outcome, error) {
	valid, err := validateAddressForm(srv.validate, form)
	if err != nil {
		return nil, err
	}

	snapshot, err := srv.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := diffAddress(snapshot, valid)
	if changes.Empty() {
		return &usecase.Outcome{
			Address: snapshot,
			Notice:  usecase.Notice{Level: usecase.NoticeInfo, Message: "No changes to save"},
		}, nil
	}

	var updated *entity.Address
	err = srv.addresses.Mutate(ctx, func(ctx context.Context) error {
		var err error
		updated, err = srv.addressRepo.UpdateAddress(ctx, id, changes)

		return err
	})
	if err != nil {
		return nil, srv.mapNotFound(err, "update address")
	}

	srv.log(ctx).Info("Address updated", slog.Int64("address_id", id), slog.Any("fields", changes.Fields()))

	return &usecase.Outcome{
		Address: updated,
		Notice:  usecase.Notice{Level: usecase.NoticeSuccess, Message: "Address updated"},
	}, nil
}

// DeleteAddress removes an address and refreshes the list.
func (srv *addressService) DeleteAddress(ctx context.Context, id int64) (*usecase.Outcome, error) {
	err := srv.addresses.Mutate(ctx, func(ctx context.Context) error {
		return srv.addressRepo.DeleteAddress(ctx, id)
	})
	if err != nil {
		return nil, srv.mapNotFound(err, "delete address")
	}

	srv.mu.Lock()
	if srv.details.Open && srv.details.AddressID == id {
		srv.closeDetailsLocked()
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Address deleted", slog.Int64("address_id", id))

	return &usecase.Outcome{
		Notice: usecase.Notice{Level: usecase.NoticeSuccess, Message: "Address deleted"},
	}, nil
}

// AssignManager links a manager to the address.
// An open details view for the same address is patched provisionally until the next list fetch confirms it.
func (srv *addressService) AssignManager(ctx context.Context, id int64, managerID *int64) (*usecase.Outcome, error) {
	if managerID == nil || *managerID == 0 {
		return nil, domainerrors.ErrManagerRequired
	}

	manager, known := srv.knownUser(*managerID)
	if known && !manager.CanManage() {
		return nil, domainerrors.ErrManagerNotEligible.WithDetails("user role is " + string(manager.Role))
	}

	changes := entity.AddressChanges{entity.FieldManagerID: *managerID}

	var updated *entity.Address
	err := srv.addresses.Mutate(ctx, func(ctx context.Context) error {
		var err error
		updated, err = srv.addressRepo.UpdateAddress(ctx, id, changes)
		if err != nil {
			return err
		}

		// Patch before the refresh so the refresh can confirm or discard it.
		srv.patchDetails(id, func(a *entity.Address) {
			assigned := *managerID
			a.ManagerID = &assigned
			a.Manager = nil
			if known {
				summary := manager.Summary()
				a.Manager = &summary
			}
		})

		return nil
	})
	if err != nil {
		return nil, srv.mapNotFound(err, "assign manager")
	}

	srv.log(ctx).Info("Manager assigned", slog.Int64("address_id", id), slog.Int64("manager_id", *managerID))

	return &usecase.Outcome{
		Address: updated,
		Notice:  usecase.Notice{Level: usecase.NoticeSuccess, Message: "Manager assigned"},
	}, nil
}

// UnassignManager clears the manager of the address.
func (srv *addressService) UnassignManager(ctx context.Context, id int64) (*usecase.Outcome, error) {
	changes := entity.AddressChanges{entity.FieldManagerID: nil}

	var updated *entity.Address
	err := srv.addresses.Mutate(ctx, func(ctx context.Context) error {
		var err error
		updated, err = srv.addressRepo.UpdateAddress(ctx, id, changes)
		if err != nil {
			return err
		}

		srv.patchDetails(id, func(a *entity.Address) {
			a.ManagerID = nil
			a.Manager = nil
		})

		return nil
	})
	if err != nil {
		return nil, srv.mapNotFound(err, "unassign manager")
	}

	srv.log(ctx).Info("Manager unassigned", slog.Int64("address_id", id))

	return &usecase.Outcome{
		Address: updated,
		Notice:  usecase.Notice{Level: usecase.NoticeSuccess, Message: "Manager unassigned"},
	}, nil
}

// ManagerCandidates fetches users and keeps those whose role can manage an address.
func (srv *addressService) ManagerCandidates(ctx context.Context) ([]entity.User, error) {
	page, err := srv.userRepo.ListUsers(ctx, repository.ListQuery{Page: 1, Limit: managerCandidateLimit})
	if err != nil {
		return nil, errors.Wrap(err, "list manager candidates")
	}

	candidates := make([]entity.User, 0, len(page.Items))
	for _, user := range page.Items {
		if user.CanManage() {
			candidates = append(candidates, user)
		}
	}

	srv.mu.Lock()
	srv.candidates = page.Items
	srv.mu.Unlock()

	return candidates, nil
}

// OpenDetails opens the details view for an address and loads its full record.
// A load that completes after the view was closed or reopened is dropped.
func (srv *addressService) OpenDetails(ctx context.Context, id int64) (*usecase.AddressDetails, error) {
	srv.mu.Lock()
	srv.generation++
	generation := srv.generation
	srv.details = usecase.AddressDetails{Open: true, AddressID: id, Loading: true}
	if cached, ok := srv.addresses.Find(byAddressID(id)); ok {
		srv.details.Address = cached.Clone()
	}
	srv.mu.Unlock()

	address, err := srv.addressRepo.FindAddressByID(ctx, id)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if generation != srv.generation {
		srv.log(ctx).Debug("Dropping stale details load", slog.Int64("address_id", id))

		return srv.detailsLocked(), nil
	}

	srv.details.Loading = false
	if err != nil {
		srv.details.Error = errorMessage(err)

		return srv.detailsLocked(), srv.mapNotFound(err, "load address details")
	}

	srv.details.Address = address
	srv.details.Error = ""
	srv.details.Provisional = false

	return srv.detailsLocked(), nil
}

// Details returns the current details view state.
func (srv *addressService) Details() *usecase.AddressDetails {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.detailsLocked()
}

// CloseDetails closes the details view and invalidates loads in flight.
func (srv *addressService) CloseDetails() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.closeDetailsLocked()
}

func (srv *addressService) closeDetailsLocked() {
	srv.generation++
	srv.details = usecase.AddressDetails{}
}

// reset drops the details view and the cached candidate listing.
func (srv *addressService) reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.closeDetailsLocked()
	srv.candidates = nil
}

func (srv *addressService) detailsLocked() *usecase.AddressDetails {
	details := srv.details
	details.Address = srv.details.Address.Clone()

	return &details
}

// patchDetails applies a local change to the open details view of the address and marks it provisional.
func (srv *addressService) patchDetails(id int64, patch func(a *entity.Address)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.details.Open || srv.details.AddressID != id || srv.details.Address == nil {
		return
	}

	patch(srv.details.Address)
	srv.details.Provisional = true
}

// reconcileDetails replaces a provisional details copy with the authoritative list entry.
func (srv *addressService) reconcileDetails(items []entity.Address) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.details.Open || !srv.details.Provisional {
		return
	}

	for i := range items {
		if items[i].ID != srv.details.AddressID {
			continue
		}

		if !sameID(normalizeManager(items[i].ManagerID), normalizeManager(srv.details.Address.ManagerID)) {
			srv.logger.Warn("Discarding provisional manager patch",
				slog.Int64("address_id", items[i].ID))
		}
		srv.details.Address = items[i].Clone()
		srv.details.Provisional = false

		return
	}
}

// snapshot returns the pre-edit state of an address: the cached list entry, else a fresh read.
func (srv *addressService) snapshot(ctx context.Context, id int64) (*entity.Address, error) {
	if cached, ok := srv.addresses.Find(byAddressID(id)); ok {
		return cached.Clone(), nil
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		return nil, srv.mapNotFound(err, "load address")
	}

	return address, nil
}

// knownUser looks a user up in the users slice and the last candidate listing.
func (srv *addressService) knownUser(id int64) (*entity.User, bool) {
	if user, ok := srv.users.Find(func(u *entity.User) bool { return u.ID == id }); ok {
		return &user, true
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.candidates {
		if srv.candidates[i].ID == id {
			user := srv.candidates[i]

			return &user, true
		}
	}

	return nil, false
}

func (srv *addressService) mapNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrAddressNotFound) {
		return errors.Wrap(domainerrors.ErrAddressNotFound, message)
	}

	return errors.Wrap(err, message)
}

func byAddressID(id int64) func(a *entity.Address) bool {
	return func(a *entity.Address) bool { return a.ID == id }
}
