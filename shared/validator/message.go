package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param} characters",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
}

// message renders the first validation error that has a known template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
