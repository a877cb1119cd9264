package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockusecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressHandler(t *testing.T) (*AddressHandler, *mockusecase.MockAddressUsecase, *mockusecase.MockOccupantUsecase) {
	addressUC := mockusecase.NewMockAddressUsecase(t)
	occupantUC := mockusecase.NewMockOccupantUsecase(t)

	return NewAddressHandler(AddressHandlerParams{
		AddressUC:  addressUC,
		OccupantUC: occupantUC,
		Logger:     newDiscardLogger(),
	}), addressUC, occupantUC
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	form := &usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv", Latitude: "50.4501", Longitude: "30.5234", ManagerID: "7"}
	addressUC.EXPECT().CreateAddress(mock.Anything, form).Return(&usecase.Outcome{
		Address: &entity.Address{ID: 1, Address: "Khreshchatyk 1", City: "Kyiv"},
		Notice:  usecase.Notice{Level: usecase.NoticeSuccess, Message: "Address created"},
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/addresses",
		`{"address":"Khreshchatyk 1","city":"Kyiv","latitude":"50.4501","longitude":"30.5234","managerId":"7"}`)
	require.NoError(t, h.CreateAddress(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var outcome usecase.Outcome
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &outcome))
	assert.Equal(t, usecase.NoticeSuccess, outcome.Notice.Level)
	assert.Equal(t, int64(1), outcome.Address.ID)
}

func TestAddressHandler_CreateAddress_ValidationError(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().CreateAddress(mock.Anything, mock.Anything).
		Return(nil, usecase.NewValidationError(map[string]string{"city": "is required"}))

	c, rec := newTestContext(http.MethodPost, "/addresses", `{"address":"Khreshchatyk 1"}`)
	require.NoError(t, h.CreateAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"city": "is required"}, env.Error.Details["fields"])
}

func TestAddressHandler_EditAddress_InvalidID(t *testing.T) {
	h, _, _ := newAddressHandler(t)

	c, rec := newTestContext(http.MethodPatch, "/addresses/abc", `{"city":"Lviv"}`)
	require.NoError(t, h.EditAddress(withParam(c, "id", "abc")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestAddressHandler_EditAddress_NoChanges(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().EditAddress(mock.Anything, int64(4), &usecase.AddressForm{Address: "Khreshchatyk 1", City: "Kyiv"}).
		Return(&usecase.Outcome{Notice: usecase.Notice{Level: usecase.NoticeInfo, Message: "No changes to save"}}, nil)

	c, rec := newTestContext(http.MethodPatch, "/addresses/4", `{"address":"Khreshchatyk 1","city":"Kyiv"}`)
	require.NoError(t, h.EditAddress(withParam(c, "id", "4")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"level":"info"`)
}

func TestAddressHandler_AssignManager(t *testing.T) {
	for _, body := range []string{`{"managerId":9}`, `{"managerId":"9"}`} {
		t.Run(body, func(t *testing.T) {
			h, addressUC, _ := newAddressHandler(t)

			addressUC.EXPECT().AssignManager(mock.Anything, int64(4), mock.MatchedBy(func(id *int64) bool {
				return id != nil && *id == 9
			})).Return(&usecase.Outcome{Notice: usecase.Notice{Level: usecase.NoticeSuccess, Message: "Manager assigned"}}, nil)

			c, rec := newTestContext(http.MethodPut, "/addresses/4/manager", body)
			require.NoError(t, h.AssignManager(withParam(c, "id", "4")))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAddressHandler_AssignManager_MissingManager(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().AssignManager(mock.Anything, int64(4), (*int64)(nil)).Return(nil, domainerrors.ErrManagerRequired)

	c, rec := newTestContext(http.MethodPut, "/addresses/4/manager", `{}`)
	require.NoError(t, h.AssignManager(withParam(c, "id", "4")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MANAGER_REQUIRED", decodeEnvelope(t, rec).Error.Code)
}

func TestAddressHandler_UnassignManager(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().UnassignManager(mock.Anything, int64(4)).
		Return(&usecase.Outcome{Notice: usecase.Notice{Level: usecase.NoticeSuccess, Message: "Manager removed"}}, nil)

	c, rec := newTestContext(http.MethodDelete, "/addresses/4/manager", "")
	require.NoError(t, h.UnassignManager(withParam(c, "id", "4")))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddressHandler_DeleteAddress_NotFound(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().DeleteAddress(mock.Anything, int64(8)).Return(nil, domainerrors.ErrAddressNotFound)

	c, rec := newTestContext(http.MethodDelete, "/addresses/8", "")
	require.NoError(t, h.DeleteAddress(withParam(c, "id", "8")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestAddressHandler_DetailsView(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().OpenDetails(mock.Anything, int64(1)).Return(&usecase.AddressDetails{
		Open:      true,
		AddressID: 1,
		Address:   &entity.Address{ID: 1, Address: "Khreshchatyk 1", City: "Kyiv"},
	}, nil)
	addressUC.EXPECT().CloseDetails().Return()
	addressUC.EXPECT().Details().Return(&usecase.AddressDetails{})

	c, rec := newTestContext(http.MethodGet, "/addresses/1", "")
	require.NoError(t, h.OpenDetails(withParam(c, "id", "1")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var details usecase.AddressDetails
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &details))
	assert.True(t, details.Open)
	assert.Equal(t, int64(1), details.AddressID)

	c, rec = newTestContext(http.MethodDelete, "/addresses/1/details", "")
	require.NoError(t, h.CloseDetails(withParam(c, "id", "1")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"open":false`)
}

func TestAddressHandler_ManagerCandidates(t *testing.T) {
	h, addressUC, _ := newAddressHandler(t)

	addressUC.EXPECT().ManagerCandidates(mock.Anything).Return([]entity.User{{ID: 2, Role: entity.RoleAdmin}}, nil)

	c, rec := newTestContext(http.MethodGet, "/users/managers", "")
	require.NoError(t, h.ManagerCandidates(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var users []entity.User
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
}

func TestAddressHandler_Occupants(t *testing.T) {
	h, _, occupantUC := newAddressHandler(t)

	occupantUC.EXPECT().ResolveOccupants(mock.Anything, int64(5)).Return(&usecase.OccupantsResult{
		AddressID:      5,
		Users:          []entity.User{{ID: 11}, {ID: 12}},
		SkippedDevices: []int64{3},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/addresses/5/occupants", "")
	require.NoError(t, h.Occupants(withParam(c, "id", "5")))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result usecase.OccupantsResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Len(t, result.Users, 2)
	assert.Equal(t, []int64{3}, result.SkippedDevices)
}
