// Package validation wraps go-playground/validator so request structs
// validate against their tags and report errors under JSON field names.
package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// errors must name the json field, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// ValidateStruct checks s against its validate tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorsToJson flattens validation errors into a {"field": "tag"} JSON object.
func ErrorsToJson(validationErrs error) (string, error) {
	out := make(map[string]string)
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		out[fieldErr.Field()] = fieldErr.Tag()
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
