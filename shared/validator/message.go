package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "{field} is required",
		"notblank":     "{field} is required",
		"contactemail": "{field} must be a valid email address",
		"phone":        "{field} must be a valid phone number",
		"dateonly":     "{field} must be a date in YYYY-MM-DD format",
		"notpast":      "{field} must not be in the past",
	}
)

func format(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	return strings.ReplaceAll(errStr, "{field}", valErr.Field())
}

// fieldMessages maps every failing field to one message. overrides is keyed by "<field>.<tag>".
func fieldMessages(err error, overrides map[string]string) map[string]string {
	result := map[string]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return result
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		if _, seen := result[field]; seen {
			continue
		}

		if msg, ok := overrides[field+"."+valErr.Tag()]; ok {
			result[field] = msg

			continue
		}

		result[field] = format(valErr)
	}

	return result
}
