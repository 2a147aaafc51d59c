// Package validate checks request DTOs before any business logic runs and
// renders failures as the field-error list clients of this API expect:
//
//	{"errors": [{"param": "password", "msg": "must be at least 8 characters"}]}
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed constraint on a named request field.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// Report field names as they appear on the wire (json tag), not as Go
	// struct field names.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct validates a DTO against its `validate` tags and returns one entry
// per failed field. A nil result means the value passed.
func Struct(i interface{}) []FieldError {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (e.g. passing a non-struct) are programmer
		// mistakes; surface them as a single generic entry.
		return []FieldError{{Param: "body", Msg: "invalid request body"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Param: fe.Field(), Msg: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
