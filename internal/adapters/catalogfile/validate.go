package catalogfile

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validateParkToken accepts names made of a single token: no whitespace
// and no commas.
func validateParkToken(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return name != "" && !strings.ContainsFunc(name, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// describeValidation turns the first validator failure into a line reason.
func describeValidation(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	switch e.Field() {
	case "ID":
		return errors.New("park id must not be negative")
	case "Name":
		if e.Tag() == "required" {
			return errors.New("park name is missing")
		}
		return errors.New("park name must be a single token without whitespace")
	case "Lat":
		return errors.New("latitude must be between -90 and 90")
	case "Lon":
		return errors.New("longitude must be between -180 and 180")
	default:
		return err
	}
}
