package impl

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const (
	maxLatitude  = 90
	maxLongitude = 180
)

// newFormValidator builds the validator used for address forms.
func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	// Registration only fails for reserved tags.
	_ = v.RegisterValidation("lat", coordinateRule(maxLatitude))
	_ = v.RegisterValidation("lng", coordinateRule(maxLongitude))

	return v
}

func coordinateRule(limit float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := parseCoordinate(fl.Field().String())

		return ok && math.Abs(value) <= limit
	}
}

// validateAddressForm trims the form and checks every field.
// The returned form is the trimmed copy.
func validateAddressForm(v *validator.Validate, form *usecase.AddressForm) (*usecase.AddressForm, error) {
	if form == nil {
		form = &usecase.AddressForm{}
	}

	trimmed := &usecase.AddressForm{
		Address:   strings.TrimSpace(form.Address),
		City:      strings.TrimSpace(form.City),
		Latitude:  strings.TrimSpace(form.Latitude),
		Longitude: strings.TrimSpace(form.Longitude),
		ManagerID: strings.TrimSpace(form.ManagerID),
	}

	err := v.Struct(trimmed)
	if err == nil {
		return trimmed, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, errors.Wrap(err, "validate address form")
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return nil, usecase.NewValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "lat":
		return "must be a number between -90 and 90"
	case "lng":
		return "must be a number between -180 and 180"
	default:
		return "is invalid"
	}
}

// parseCoordinate parses a finite decimal number.
func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// parseOptionalFloat returns nil for empty or unparseable input, never zero.
func parseOptionalFloat(s string) *float64 {
	value, ok := parseCoordinate(s)
	if !ok {
		return nil
	}

	return &value
}
