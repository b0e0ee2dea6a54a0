package response

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Messages maps a field name to the message reported for each failed tag.
type Messages map[string]map[string]string

func OK(msg string) Response {
	return Response{Message: msg}
}

func Error(msg string) Response {
	return Response{Message: msg}
}

func Errors(errs ...FieldError) Response {
	return Response{Errors: errs}
}

// ValidationError reports one entry per violated rule. A failed "required"
// also reports the field's "min" rule, since an empty value fails both.
func ValidationError(errs validator.ValidationErrors, messages Messages) Response {
	var list []FieldError

	for _, err := range errs {
		field := err.Field()

		list = append(list, FieldError{
			Field:   field,
			Message: message(messages, err),
		})

		if err.Tag() != "required" {
			continue
		}
		if msg, ok := messages[field]["min"]; ok {
			list = append(list, FieldError{Field: field, Message: msg})
		}
	}

	return Errors(list...)
}

func message(messages Messages, err validator.FieldError) string {
	if msg, ok := messages[err.Field()][err.Tag()]; ok {
		return msg
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email":
		return fmt.Sprintf("field %s is not a valid email", err.Field())
	case "min":
		return fmt.Sprintf("field %s should contain at least %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}
