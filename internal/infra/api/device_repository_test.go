package api

import (
	"context"
	"net/http"
	"testing"

	"portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_ListDevices_AddressReferences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"devices":[
			{"id":1,"name":"Gate","addressId":"5"},
			{"id":2,"name":"Door","address_id":5},
			{"id":3,"name":"Lift","address":{"id":6}},
			{"id":4,"name":"Spare","address":"7"},
			{"id":5,"name":"Unassigned"}
		]}`)
	}, newFakeSession("token"))

	page, err := NewDeviceRepository(client).ListDevices(context.Background(), repository.ListQuery{Limit: 100})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)

	assert.True(t, page.Items[0].AtAddress(5))
	assert.True(t, page.Items[1].AtAddress(5))
	assert.True(t, page.Items[2].AtAddress(6))
	assert.True(t, page.Items[3].AtAddress(7))
	assert.Nil(t, page.Items[4].AddressID)
}

func TestDeviceRepository_FindDeviceByID_Subscriptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/devices/8", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"data":{"id":8,"name":"Gate","userSubscriptions":[
			{"id":1,"userId":3},
			{"id":2,"user_id":"4"},
			{"id":3,"user":{"id":3}},
			{"id":4}
		]}}`)
	}, newFakeSession("token"))

	device, err := NewDeviceRepository(client).FindDeviceByID(context.Background(), 8)
	require.NoError(t, err)

	require.Len(t, device.Subscriptions, 3)
	assert.Equal(t, []int64{3, 4}, device.SubscriberIDs())
}

func TestDeviceRepository_FindDeviceByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	}, newFakeSession("token"))

	_, err := NewDeviceRepository(client).FindDeviceByID(context.Background(), 8)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
