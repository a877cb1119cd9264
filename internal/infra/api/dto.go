package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"portal/internal/domain/entity"
)

type idRef struct {
	ID looseInt `json:"id"`
}

type addressDTO struct {
	ID           looseInt        `json:"id"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Latitude     looseFloat      `json:"latitude"`
	Longitude    looseFloat      `json:"longitude"`
	ManagerID    looseInt        `json:"managerId"`
	ManagerIDAlt looseInt        `json:"manager_id"`
	Manager      json.RawMessage `json:"manager"`
	Devices      json.RawMessage `json:"devices"`
}

func (d *addressDTO) toEntity() entity.Address {
	address := entity.Address{
		ID:        d.ID.Or(0),
		Address:   d.Address,
		City:      d.City,
		Latitude:  d.Latitude.Ptr(),
		Longitude: d.Longitude.Ptr(),
		ManagerID: firstInt(d.ManagerID, d.ManagerIDAlt),
	}

	// "manager" is either an embedded user or a bare identifier.
	if _, ok := decodeObjectMap(bytes.TrimSpace(d.Manager)); ok {
		var dto userDTO
		if err := json.Unmarshal(d.Manager, &dto); err == nil {
			manager := dto.toEntity()
			summary := manager.Summary()
			address.Manager = &summary
			if address.ManagerID == nil && manager.ID != 0 {
				address.ManagerID = &manager.ID
			}
		}
	} else if address.ManagerID == nil {
		address.ManagerID = parseLooseInt(d.Manager)
	}

	var devices []deviceDTO
	if err := json.Unmarshal(d.Devices, &devices); err == nil {
		for i := range devices {
			device := devices[i].toEntity()
			address.Devices = append(address.Devices, entity.DeviceSummary{
				ID:       device.ID,
				Name:     device.Name,
				IsOnline: device.IsOnline,
			})
		}
	}

	return address
}

type userDTO struct {
	ID         looseInt `json:"id"`
	Name       string   `json:"name"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Role       string   `json:"role"`
	IsActive   bool     `json:"isActive"`
	IsVerified bool     `json:"isVerified"`
}

func (d *userDTO) toEntity() entity.User {
	user := entity.User{
		ID:         d.ID.Or(0),
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Phone:      d.Phone,
		Role:       entity.ParseRole(d.Role),
		IsActive:   d.IsActive,
		IsVerified: d.IsVerified,
	}

	if user.FirstName == "" && user.LastName == "" && d.Name != "" {
		first, last, _ := strings.Cut(strings.TrimSpace(d.Name), " ")
		user.FirstName = first
		user.LastName = strings.TrimSpace(last)
	}

	return user
}

type subscriptionDTO struct {
	ID        looseInt `json:"id"`
	UserID    looseInt `json:"userId"`
	UserIDAlt looseInt `json:"user_id"`
	User      *idRef   `json:"user"`
}

func (d *subscriptionDTO) userID() *int64 {
	if id := firstInt(d.UserID, d.UserIDAlt); id != nil {
		return id
	}
	if d.User != nil {
		return d.User.ID.Ptr()
	}

	return nil
}

type deviceDTO struct {
	ID                looseInt          `json:"id"`
	Name              string            `json:"name"`
	SerialNumber      string            `json:"serialNumber"`
	AddressID         looseInt          `json:"addressId"`
	AddressIDAlt      looseInt          `json:"address_id"`
	Address           json.RawMessage   `json:"address"`
	IsOnline          bool              `json:"isOnline"`
	IsEnabled         bool              `json:"isEnabled"`
	Subscriptions     []subscriptionDTO `json:"subscriptions"`
	UserSubscriptions []subscriptionDTO `json:"userSubscriptions"`
}

func (d *deviceDTO) toEntity() entity.Device {
	device := entity.Device{
		ID:           d.ID.Or(0),
		Name:         d.Name,
		SerialNumber: d.SerialNumber,
		AddressID:    firstInt(d.AddressID, d.AddressIDAlt),
		IsOnline:     d.IsOnline,
		IsEnabled:    d.IsEnabled,
	}

	// "address" is either an embedded record or a bare identifier.
	if device.AddressID == nil && len(d.Address) > 0 {
		var ref idRef
		if err := json.Unmarshal(d.Address, &ref); err == nil && ref.ID.Ptr() != nil {
			device.AddressID = ref.ID.Ptr()
		} else {
			device.AddressID = parseLooseInt(d.Address)
		}
	}

	for _, list := range [][]subscriptionDTO{d.Subscriptions, d.UserSubscriptions} {
		for i := range list {
			userID := list[i].userID()
			if userID == nil {
				continue
			}
			device.Subscriptions = append(device.Subscriptions, entity.Subscription{
				ID:     list[i].ID.Or(0),
				UserID: *userID,
			})
		}
	}

	return device
}

type loginDTO struct {
	Token           string   `json:"token"`
	AccessToken     string   `json:"accessToken"`
	AccessTokenAlt  string   `json:"access_token"`
	RefreshToken    string   `json:"refreshToken"`
	RefreshTokenAlt string   `json:"refresh_token"`
	User            *userDTO `json:"user"`
}

func (d *loginDTO) toEntity() *entity.Session {
	session := &entity.Session{
		Token:        firstNonEmpty(d.Token, d.AccessToken, d.AccessTokenAlt),
		RefreshToken: firstNonEmpty(d.RefreshToken, d.RefreshTokenAlt),
	}
	if d.User != nil {
		user := d.User.toEntity()
		session.User = &user
	}

	return session
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// decodeItems decodes every raw collection item with the given DTO conversion.
func decodeItems[D any, T any](c *collection, convert func(*D) T) ([]T, error) {
	items := make([]T, 0, len(c.items))
	for _, raw := range c.items {
		var dto D
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		items = append(items, convert(&dto))
	}

	return items, nil
}
