package recommendation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agricure/api/internal/models"
)

// ErrInvalidObservation is matched by every InputParseError.
var ErrInvalidObservation = errors.New("invalid field observation")

// InputParseError reports every form field that could not be parsed or is
// out of range, keyed by the form's field name.
type InputParseError struct {
	Fields map[string]string
}

func (e *InputParseError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidObservation, strings.Join(parts, "; "))
}

func (e *InputParseError) Unwrap() error {
	return ErrInvalidObservation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseObservation parses and validates a submitted form. It never lets a
// malformed number through: non-numeric, NaN, infinite and out-of-range
// values all come back as an *InputParseError.
func ParseObservation(form models.FieldObservationForm) (models.FieldObservation, error) {
	failures := make(map[string]string)

	number := func(name, raw string) float64 {
		value, problem := parseNumber(raw)
		if problem != "" {
			failures[name] = problem
		}
		return value
	}

	obs := models.FieldObservation{
		FieldName:    strings.TrimSpace(form.FieldName),
		SizeUnit:     models.SizeUnit(normalize(form.SizeUnit)),
		CropType:     models.CropType(normalize(form.CropType)),
		SoilType:     models.SoilType(normalize(form.SoilType)),
		FieldSize:    number("fieldSize", form.FieldSize),
		SoilPH:       number("soilPH", form.SoilPH),
		Nitrogen:     number("nitrogen", form.Nitrogen),
		Phosphorus:   number("phosphorus", form.Phosphorus),
		Potassium:    number("potassium", form.Potassium),
		Temperature:  number("temperature", form.Temperature),
		Humidity:     number("humidity", form.Humidity),
		SoilMoisture: number("soilMoisture", form.SoilMoisture),
	}
	if obs.SizeUnit == "" {
		obs.SizeUnit = models.UnitHectares
	}

	if err := validate.Struct(obs); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return models.FieldObservation{}, fmt.Errorf("failed to validate observation: %w", err)
		}
		for _, fe := range fieldErrors {
			// A parse failure says more than the range check on its zero value.
			if _, seen := failures[fe.Field()]; !seen {
				failures[fe.Field()] = describe(fe)
			}
		}
	}

	if len(failures) > 0 {
		return models.FieldObservation{}, &InputParseError{Fields: failures}
	}
	return obs, nil
}

// parseNumber returns the parsed value, or a message describing why raw is
// not a usable number.
func parseNumber(raw string) (float64, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, "This field is required"
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, "Must be a number"
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, "Must be a finite number"
	}
	return value, ""
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "lte":
		return "Must be less than or equal to " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Validation failed for tag: " + fe.Tag()
	}
}
