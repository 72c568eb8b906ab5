package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"gt":       "{field} must be greater than {param}",
		"uuid":     "{field} must be a valid UUID",
		"date":     "{field} must be a date formatted as YYYY-MM-DD",
		"clock":    "{field} must be a time formatted as HH:MM",
	}
)

func message(err error) string {
	return messageFor(err, "")
}

// messageFor renders the first validation error. A non-empty name replaces the field name,
// which validate.Var leaves blank.
func messageFor(err error, name string) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			if name != "" {
				field = name
			}
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
