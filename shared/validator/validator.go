package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func layoutValidation(layouts ...string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, layout := range layouts {
			if _, err := time.Parse(layout, str); err == nil {
				return true
			}
		}

		return false
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// messages name fields as clients send them
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("date", layoutValidation(constant.DayFormat))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clock", layoutValidation(constant.ClockFormat, constant.ClockSecFormat))
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it. Both failures are 400s.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateParam validates a single path or query value under the given name.
func ValidateParam(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.BadRequestFromString(messageFor(err, name)) //nolint:wrapcheck
	}

	return nil
}
