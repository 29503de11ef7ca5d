// Package validation checks decoded payloads and outgoing request bodies
// against their `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}

		return tag
	})

	return v
}

// Struct validates v, following pointers and walking slices element by
// element. Values that are neither structs nor slices of structs pass.
func Struct(v interface{}) error {
	return check(reflect.ValueOf(v))
}

func check(value reflect.Value) error {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil
		}

		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		err := validate.Struct(value.Interface())
		if err != nil {
			return describe(err)
		}
	case reflect.Slice, reflect.Array:
		for i := range value.Len() {
			err := check(value.Index(i))
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	default:
	}

	return nil
}

// describe flattens validator errors into a single readable error.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldErr.Namespace()+" "+message(fieldErr))
	}

	return &Error{Fields: fieldErrs, msg: strings.Join(messages, "; ")}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	}

	return "is invalid"
}

// Error lists the fields that failed validation.
type Error struct {
	Fields validator.ValidationErrors
	msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}
