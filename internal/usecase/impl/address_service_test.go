package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var firstPage = repository.ListQuery{Page: 1, Limit: 10}

type addressFixture struct {
	addressRepo *mockRepo.MockAddressRepository
	userRepo    *mockRepo.MockUserRepository
	addresses   *Slice[entity.Address]
	users       *Slice[entity.User]
	service     usecase.AddressUsecase
	teardown    func()
}

func newAddressFixture(t *testing.T) *addressFixture {
	t.Helper()

	f := &addressFixture{
		addressRepo: mockRepo.NewMockAddressRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}
	f.addresses = NewSlice[entity.Address]("addresses", f.addressRepo.ListAddresses, newDiscardLogger())
	f.users = NewSlice[entity.User]("users", f.userRepo.ListUsers, newDiscardLogger())

	var session *mockService.MockSessionContext
	session, f.teardown = newTeardownSession(t)
	f.service = NewAddressService(AddressServiceParams{
		AddressRepo: f.addressRepo,
		UserRepo:    f.userRepo,
		Addresses:   f.addresses,
		Users:       f.users,
		Session:     session,
		Logger:      newDiscardLogger(),
	})

	return f
}

// loadAddresses primes the addresses slice.
func (f *addressFixture) loadAddresses(t *testing.T, items ...entity.Address) {
	t.Helper()

	f.addressRepo.EXPECT().ListAddresses(mock.Anything, firstPage).Return(addressPage(items...), nil).Once()
	_, err := f.addresses.Fetch(context.Background(), firstPage)
	require.NoError(t, err)
}

func TestAddressService_CreateAddress_Success(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	created := kyivAddress()
	f.addressRepo.EXPECT().
		CreateAddress(ctx, &entity.AddressDraft{
			Address:   "Khreshchatyk 1",
			City:      "Kyiv",
			Latitude:  floatPtr(50.4501),
			Longitude: floatPtr(30.5234),
			ManagerID: nil,
		}).
		Return(&created, nil)
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(created), nil)

	outcome, err := f.service.CreateAddress(ctx, &usecase.AddressForm{
		Address:   " Khreshchatyk 1 ",
		City:      "Kyiv",
		Latitude:  "50.4501",
		Longitude: "30.5234",
		ManagerID: "0",
	})
	require.NoError(t, err)

	assert.Equal(t, usecase.NoticeSuccess, outcome.Notice.Level)
	assert.Equal(t, &created, outcome.Address)
	assert.Len(t, f.addresses.State().Items, 1)
}

func TestAddressService_CreateAddress_NormalizesManager(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().
		CreateAddress(ctx, mock.MatchedBy(func(d *entity.AddressDraft) bool {
			return d.ManagerID != nil && *d.ManagerID == 12 && d.Latitude == nil
		})).
		Return(&entity.Address{ID: 3}, nil)
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(), nil)

	_, err := f.service.CreateAddress(ctx, &usecase.AddressForm{Address: "A", City: "B", ManagerID: "12"})
	require.NoError(t, err)
}

func TestAddressService_CreateAddress_ValidationFailsWithoutNetwork(t *testing.T) {
	f := newAddressFixture(t)

	_, err := f.service.CreateAddress(context.Background(), &usecase.AddressForm{Address: "", City: "Kyiv", Latitude: "91"})

	var validationErr *usecase.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "address")
	assert.Contains(t, validationErr.Fields, "latitude")
}

func TestAddressService_CreateAddress_SurfacesServerMessage(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().
		CreateAddress(ctx, mock.Anything).
		Return(nil, domainerrors.NewUpstreamError(nil, 409, "Address already exists"))

	_, err := f.service.CreateAddress(ctx, &usecase.AddressForm{Address: "A", City: "B"})

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Address already exists", upstream.Message())
	assert.False(t, f.addresses.State().Loaded)
}

func TestAddressService_EditAddress_EmptyDiffSkipsNetwork(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())

	outcome, err := f.service.EditAddress(context.Background(), 1, &usecase.AddressForm{
		Address:   "Khreshchatyk 1 ",
		City:      "Kyiv",
		Latitude:  "50.45010",
		Longitude: "30.5234",
	})
	require.NoError(t, err)

	assert.Equal(t, usecase.NoticeInfo, outcome.Notice.Level)
	assert.Equal(t, "No changes to save", outcome.Notice.Message)
}

func TestAddressService_EditAddress_SendsMinimalDiff(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())
	ctx := context.Background()

	updated := kyivAddress()
	updated.City = "Kyiv City"
	updated.Latitude = nil
	f.addressRepo.EXPECT().
		UpdateAddress(ctx, int64(1), entity.AddressChanges{
			entity.FieldCity:     "Kyiv City",
			entity.FieldLatitude: nil,
		}).
		Return(&updated, nil)
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(updated), nil)

	outcome, err := f.service.EditAddress(ctx, 1, &usecase.AddressForm{
		Address:   "Khreshchatyk 1",
		City:      "Kyiv City",
		Longitude: "30.5234",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.NoticeSuccess, outcome.Notice.Level)
	assert.Equal(t, "Kyiv City", f.addresses.State().Items[0].City)
}

func TestAddressService_EditAddress_SnapshotFallsBackToBackend(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	address := kyivAddress()
	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(&address, nil)

	outcome, err := f.service.EditAddress(ctx, 1, &usecase.AddressForm{
		Address:   "Khreshchatyk 1",
		City:      "Kyiv",
		Latitude:  "50.4501",
		Longitude: "30.5234",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.NoticeInfo, outcome.Notice.Level)
}

func TestAddressService_EditAddress_NotFound(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(404)).Return(nil, repository.ErrAddressNotFound)

	_, err := f.service.EditAddress(ctx, 404, &usecase.AddressForm{Address: "A", City: "B"})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())
	ctx := context.Background()

	f.addressRepo.EXPECT().DeleteAddress(ctx, int64(1)).Return(nil)
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(), nil)

	outcome, err := f.service.DeleteAddress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Address deleted", outcome.Notice.Message)
	assert.Empty(t, f.addresses.State().Items)
}

func TestAddressService_AssignManager_RequiresSelection(t *testing.T) {
	f := newAddressFixture(t)

	_, err := f.service.AssignManager(context.Background(), 1, nil)
	assert.ErrorIs(t, err, domainerrors.ErrManagerRequired)

	_, err = f.service.AssignManager(context.Background(), 1, int64Ptr(0))
	assert.ErrorIs(t, err, domainerrors.ErrManagerRequired)
}

func TestAddressService_AssignManager_RejectsKnownIneligibleUser(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().
		ListUsers(ctx, mock.Anything).
		Return(userPage(entity.User{ID: 5, Role: entity.RoleUser}), nil)
	_, err := f.users.Fetch(ctx, repository.ListQuery{})
	require.NoError(t, err)

	_, err = f.service.AssignManager(ctx, 1, int64Ptr(5))
	assert.ErrorIs(t, err, domainerrors.ErrManagerNotEligible)
}

func TestAddressService_AssignManager_ProvisionalPatchConfirmed(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())
	ctx := context.Background()

	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(kyivAddressPtr(), nil)
	_, err := f.service.OpenDetails(ctx, 1)
	require.NoError(t, err)

	confirmed := kyivAddress()
	confirmed.ManagerID = int64Ptr(7)
	confirmed.Manager = &entity.UserSummary{ID: 7, Name: "Olena Koval"}

	f.addressRepo.EXPECT().
		UpdateAddress(ctx, int64(1), entity.AddressChanges{entity.FieldManagerID: int64(7)}).
		Return(&confirmed, nil)
	f.addressRepo.EXPECT().
		ListAddresses(ctx, firstPage).
		RunAndReturn(func(context.Context, repository.ListQuery) (*entity.Page[entity.Address], error) {
			// The details view carries the optimistic patch until the list answers.
			details := f.service.Details()
			assert.True(t, details.Provisional)
			assert.Equal(t, int64Ptr(7), details.Address.ManagerID)

			return addressPage(confirmed), nil
		})

	outcome, err := f.service.AssignManager(ctx, 1, int64Ptr(7))
	require.NoError(t, err)
	assert.Equal(t, "Manager assigned", outcome.Notice.Message)

	details := f.service.Details()
	assert.False(t, details.Provisional)
	assert.Equal(t, "Olena Koval", details.Address.Manager.Name)
}

func TestAddressService_AssignManager_ProvisionalPatchDiscardedOnDisagreement(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())
	ctx := context.Background()

	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(kyivAddressPtr(), nil)
	_, err := f.service.OpenDetails(ctx, 1)
	require.NoError(t, err)

	f.addressRepo.EXPECT().UpdateAddress(ctx, int64(1), mock.Anything).Return(nil, nil)
	// The server kept the previous manager.
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(kyivAddress()), nil)

	_, err = f.service.AssignManager(ctx, 1, int64Ptr(7))
	require.NoError(t, err)

	details := f.service.Details()
	assert.False(t, details.Provisional)
	assert.Nil(t, details.Address.ManagerID)
}

func TestAddressService_AssignManager_PatchStaysProvisionalWhenRefreshFails(t *testing.T) {
	f := newAddressFixture(t)
	f.loadAddresses(t, kyivAddress())
	ctx := context.Background()

	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(kyivAddressPtr(), nil)
	_, err := f.service.OpenDetails(ctx, 1)
	require.NoError(t, err)

	f.addressRepo.EXPECT().UpdateAddress(ctx, int64(1), mock.Anything).Return(nil, nil)
	f.addressRepo.EXPECT().
		ListAddresses(ctx, firstPage).
		Return(nil, domainerrors.NewUpstreamError(nil, 503, ""))

	_, err = f.service.AssignManager(ctx, 1, int64Ptr(7))
	require.NoError(t, err)

	details := f.service.Details()
	assert.True(t, details.Provisional)
	assert.Equal(t, int64Ptr(7), details.Address.ManagerID)
}

func TestAddressService_UnassignManager(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().
		UpdateAddress(ctx, int64(1), entity.AddressChanges{entity.FieldManagerID: nil}).
		Return(kyivAddressPtr(), nil)
	f.addressRepo.EXPECT().ListAddresses(ctx, firstPage).Return(addressPage(kyivAddress()), nil)

	outcome, err := f.service.UnassignManager(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Manager unassigned", outcome.Notice.Message)
}

func TestAddressService_ManagerCandidates(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().
		ListUsers(ctx, repository.ListQuery{Page: 1, Limit: 100}).
		Return(userPage(
			entity.User{ID: 1, Role: entity.RoleUser},
			entity.User{ID: 2, Role: entity.RoleAdmin},
			entity.User{ID: 3, Role: entity.RoleSuperAdmin},
		), nil)

	candidates, err := f.service.ManagerCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, int64(2), candidates[0].ID)
	assert.Equal(t, int64(3), candidates[1].ID)

	// Users seen in the candidate listing are known for eligibility checks.
	_, err = f.service.AssignManager(ctx, 9, int64Ptr(1))
	assert.ErrorIs(t, err, domainerrors.ErrManagerNotEligible)
}

func TestAddressService_OpenDetails_DropsLoadAfterClose(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().
		FindAddressByID(ctx, int64(1)).
		RunAndReturn(func(context.Context, int64) (*entity.Address, error) {
			f.service.CloseDetails()

			return kyivAddressPtr(), nil
		})

	details, err := f.service.OpenDetails(ctx, 1)
	require.NoError(t, err)
	assert.False(t, details.Open)
	assert.Nil(t, details.Address)
	assert.False(t, f.service.Details().Open)
}

func TestAddressService_OpenDetails_NotFound(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(8)).Return(nil, repository.ErrAddressNotFound)

	details, err := f.service.OpenDetails(ctx, 8)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.True(t, details.Open)
	assert.False(t, details.Loading)
	assert.NotEmpty(t, details.Error)
}

func TestAddressService_SessionTeardownClearsViewState(t *testing.T) {
	f := newAddressFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().
		ListUsers(ctx, repository.ListQuery{Page: 1, Limit: 100}).
		Return(userPage(entity.User{ID: 1, Role: entity.RoleUser}), nil)
	f.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(kyivAddressPtr(), nil)

	_, err := f.service.ManagerCandidates(ctx)
	require.NoError(t, err)
	details, err := f.service.OpenDetails(ctx, 1)
	require.NoError(t, err)
	require.True(t, details.Open)

	f.teardown()

	details = f.service.Details()
	assert.False(t, details.Open)
	assert.Nil(t, details.Address)

	srv, ok := f.service.(*addressService)
	require.True(t, ok)
	_, known := srv.knownUser(1)
	assert.False(t, known)
}
