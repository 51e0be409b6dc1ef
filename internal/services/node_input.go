package services

import (
	"errors"
	"route-comparison-service/internal/domain"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseNodeInput turns raw form text into a NodeCreate. Empty or non-numeric
// coordinates and out-of-range values are ValidationFailed.
func ParseNodeInput(name, lat, lng string) (domain.NodeCreate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NodeCreate{}, &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	latVal, err := parseCoordinate("lat", lat)
	if err != nil {
		return domain.NodeCreate{}, err
	}
	lngVal, err := parseCoordinate("lng", lng)
	if err != nil {
		return domain.NodeCreate{}, err
	}

	in := domain.NodeCreate{Name: name, Lat: latVal, Lng: lngVal}
	if err := ValidateNodeCreate(in); err != nil {
		return domain.NodeCreate{}, err
	}
	return in, nil
}

func parseCoordinate(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &domain.ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// ValidateNodeCreate checks an already-parsed node input.
func ValidateNodeCreate(in domain.NodeCreate) error {
	in.Name = strings.TrimSpace(in.Name)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &domain.ValidationError{Field: "node", Reason: err.Error()}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &domain.ValidationError{Field: field, Reason: "is required"}
	case "gte", "lte":
		return &domain.ValidationError{Field: field, Reason: "is out of range"}
	default:
		return &domain.ValidationError{Field: field, Reason: "is invalid (" + fe.Tag() + ")"}
	}
}
