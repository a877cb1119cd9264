package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/errors"
)

const addressesPath = "/addresses"

type addressRepository struct {
	client *Client
}

// NewAddressRepository creates an AddressRepository backed by the REST API.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) ListAddresses(ctx context.Context, query repository.ListQuery) (*entity.Page[entity.Address], error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   addressesPath,
		query:  pageParams(query),
	})
	if err != nil {
		return nil, err
	}

	c, err := decodeCollection(body, "addresses")
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(c, (*addressDTO).toEntity)
	if err != nil {
		return nil, errors.Wrap(err, "decode addresses")
	}

	return &entity.Page[entity.Address]{Items: items, Pagination: c.pagination}, nil
}

func (r *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   addressPath(id),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, err
	}

	return decodeAddress(body)
}

func (r *addressRepository) CreateAddress(ctx context.Context, draft *entity.AddressDraft) (*entity.Address, error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   addressesPath,
		body:   draft,
	})
	if err != nil {
		return nil, err
	}

	return decodeAddress(body)
}

func (r *addressRepository) UpdateAddress(ctx context.Context, id int64, changes entity.AddressChanges) (*entity.Address, error) {
	body, err := r.client.do(ctx, request{
		method: http.MethodPatch,
		path:   addressPath(id),
		body:   map[string]any(changes),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, err
	}

	return decodeAddress(body)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   addressPath(id),
	})
	if isNotFound(err) {
		return repository.ErrAddressNotFound
	}

	return err
}

// decodeAddress decodes a single address; an empty body yields nil.
func decodeAddress(body []byte) (*entity.Address, error) {
	if len(body) == 0 {
		return nil, nil
	}

	raw, err := decodeRecord(body, "address")
	if err != nil {
		return nil, err
	}

	var dto addressDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, errors.Wrap(err, "decode address")
	}
	address := dto.toEntity()

	return &address, nil
}

func addressPath(id int64) string {
	return addressesPath + "/" + strconv.FormatInt(id, 10)
}

func pageParams(query repository.ListQuery) map[string]string {
	query = query.Normalize()
	params := map[string]string{
		"page":  strconv.Itoa(query.Page),
		"limit": strconv.Itoa(query.Limit),
	}
	if query.Role != "" {
		params["role"] = query.Role.String()
	}

	return params
}

func isNotFound(err error) bool {
	var upstream *domainerrors.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode() == http.StatusNotFound
	}

	return false
}
