package usecase

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AssignManagerForm is the manager picker input.
type AssignManagerForm struct {
	ManagerID string `json:"managerId"`
}

// UnmarshalJSON accepts every form field as a string, a number or null.
// Numbers keep their literal text so "50.45010" round-trips unchanged.
func (f *AddressForm) UnmarshalJSON(data []byte) error {
	return decodeFormFields(data, "address form", map[string]*string{
		"address":   &f.Address,
		"city":      &f.City,
		"latitude":  &f.Latitude,
		"longitude": &f.Longitude,
		"managerId": &f.ManagerID,
	})
}

// UnmarshalJSON accepts managerId as a string, a number or null, like the address form.
func (f *AssignManagerForm) UnmarshalJSON(data []byte) error {
	return decodeFormFields(data, "manager form", map[string]*string{
		"managerId": &f.ManagerID,
	})
}

// Manager returns the selected manager, or nil when nothing usable was picked.
func (f *AssignManagerForm) Manager() *int64 {
	return ParseManagerID(f.ManagerID)
}

// ParseManagerID normalizes a manager reference. Empty, unparseable and 0 all mean "no manager".
func ParseManagerID(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return nil
		}
		id = int64(f)
	}
	if id == 0 {
		return nil
	}

	return &id
}

func decodeFormFields(data []byte, form string, fields map[string]*string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "decode %s", form)
	}

	for name, target := range fields {
		value, ok := raw[name]
		if !ok {
			continue
		}

		text, err := formText(value)
		if err != nil {
			return errors.Wrapf(err, "decode %s field %s", form, name)
		}
		*target = text
	}

	return nil
}

func formText(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", nil
	}

	if value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", errors.WithStack(err)
		}

		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		return "", errors.Errorf("expected text or number, got %s", value)
	}

	return n.String(), nil
}
