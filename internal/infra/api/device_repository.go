package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

const devicesPath = "/devices"

type deviceRepository struct {
	client *Client
}

// NewDeviceRepository creates a DeviceRepository backed by the REST API.
func NewDeviceRepository(client *Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

func (r *deviceRepository) ListDevices(ctx context.Context, query repository.ListQuery) (*entity.Page[entity.Device], error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   devicesPath,
		query:  pageParams(query),
	})
	if err != nil {
		return nil, err
	}

	c, err := decodeCollection(body, "devices")
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(c, (*deviceDTO).toEntity)
	if err != nil {
		return nil, errors.Wrap(err, "decode devices")
	}

	return &entity.Page[entity.Device]{Items: items, Pagination: c.pagination}, nil
}

func (r *deviceRepository) FindDeviceByID(ctx context.Context, id int64) (*entity.Device, error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   devicesPath + "/" + strconv.FormatInt(id, 10),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, err
	}

	raw, err := decodeRecord(body, "device")
	if err != nil {
		return nil, err
	}

	var dto deviceDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, errors.Wrap(err, "decode device")
	}
	device := dto.toEntity()

	return &device, nil
}
