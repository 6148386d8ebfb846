// Package validator checks request payloads against their `validate` struct tags.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"inventory-tracker/internal/model"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint, named by its JSON key.
type FieldError struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON keys instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct returns every failed constraint on data, or nil.
func ValidateStruct(data interface{}) []*FieldError {
	var fieldErrors []*FieldError

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*FieldError{{FailedField: "", Tag: "invalid", Value: err.Error()}}
	}

	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, &FieldError{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return fieldErrors
}

// Validate is ValidateStruct folded into a single domain error.
// Missing required fields map to MISSING_FIELD.
func Validate(data interface{}) error {
	fieldErrors := ValidateStruct(data)
	if len(fieldErrors) == 0 {
		return nil
	}

	var missing, other []string
	for _, fe := range fieldErrors {
		if fe.Tag == "required" {
			missing = append(missing, fe.FailedField)
			continue
		}
		other = append(other, fmt.Sprintf("%s failed on '%s'", fe.FailedField, fe.Tag))
	}

	if len(missing) > 0 {
		return model.NewDomainError(model.ErrCodeMissingField,
			fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")))
	}
	return model.NewDomainError(model.ErrCodeInvalidJSON,
		fmt.Sprintf("validation failed: %s", strings.Join(other, "; ")))
}
