package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names so messages match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	return collectErrors(validate.Struct(data))
}

// ValidateStructPartial validates only the named struct fields (Go field names).
func ValidateStructPartial(data interface{}, fields ...string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	return collectErrors(validate.StructPartial(data, fields...))
}

func collectErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
		return errors
	}

	errors["_"] = err.Error()
	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	if err.Tag() == "required" {
		return "This field is required"
	}
	return fmt.Sprintf("Invalid %s field", err.Field())
}
