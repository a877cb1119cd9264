package api

import (
	"testing"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection_KnownShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantItems int
		wantPages int
	}{
		{name: "bare array", body: `[{"id":1},{"id":2}]`, wantItems: 2},
		{name: "data array", body: `{"data":[{"id":1}],"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`, wantItems: 1, wantPages: 1},
		{name: "results with pages", body: `{"results":[{"id":1},{"id":2},{"id":3}],"pages":{"currentPage":2,"perPage":3,"totalItems":9,"totalPages":3}}`, wantItems: 3, wantPages: 3},
		{name: "resource key", body: `{"users":[{"id":1}]}`, wantItems: 1},
		{name: "nested data results", body: `{"data":{"results":[{"id":1}],"pages":5}}`, wantItems: 1, wantPages: 5},
		{name: "empty data", body: `{"data":[]}`, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := decodeCollection([]byte(tt.body), "users")
			require.NoError(t, err)
			assert.Len(t, c.items, tt.wantItems)

			if tt.wantPages == 0 {
				return
			}
			require.NotNil(t, c.pagination)
			assert.Equal(t, tt.wantPages, c.pagination.TotalPages)
		})
	}
}

func TestDecodeCollection_PaginationAliases(t *testing.T) {
	c, err := decodeCollection([]byte(`{"results":[],"pages":{"currentPage":"2","perPage":25,"totalItems":51,"pages":3}}`), "addresses")
	require.NoError(t, err)
	require.NotNil(t, c.pagination)

	assert.Equal(t, 2, c.pagination.Page)
	assert.Equal(t, 25, c.pagination.Limit)
	assert.Equal(t, 51, c.pagination.Total)
	assert.Equal(t, 3, c.pagination.TotalPages)
}

func TestDecodeCollection_UnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrong resource key", body: `{"devices":[{"id":1}]}`},
		{name: "data is null", body: `{"data":null}`},
		{name: "results is object", body: `{"results":{"id":1}}`},
		{name: "scalar", body: `42`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCollection([]byte(tt.body), "users")
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedEnvelope)

			var envErr *UnrecognizedEnvelopeError
			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, "users", envErr.Resource)
		})
	}
}

func TestDecodeRecord(t *testing.T) {
	raw, err := decodeRecord([]byte(`{"data":{"id":3,"address":"Main St 1"}}`), "address")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"address":"Main St 1"}`, string(raw))

	raw, err = decodeRecord([]byte(`{"id":4,"address":"Main St 2"}`), "address")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"address":"Main St 2"}`, string(raw))

	_, err = decodeRecord([]byte(`[1,2]`), "address")
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedEnvelope)
}

func TestMessageFromBody(t *testing.T) {
	assert.Equal(t, "City is required", messageFromBody([]byte(`{"message":"City is required"}`)))
	assert.Equal(t, "Conflict", messageFromBody([]byte(`{"error":"Conflict"}`)))
	assert.Equal(t, "nested", messageFromBody([]byte(`{"error":{"message":"nested"}}`)))
	assert.Equal(t, "a; b", messageFromBody([]byte(`{"errors":["a","b"]}`)))
	assert.Equal(t, "plain text", messageFromBody([]byte("plain text")))
}
