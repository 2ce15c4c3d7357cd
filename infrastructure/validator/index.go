package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

type Validator struct{}

// ValidateStruct returns nil when payload passes every rule, otherwise one error per failed field.
func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

var ValidatorInstance = Validator{}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &[]error{err}
	}
	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, describe(fieldErr))
	}
	return &errs
}

func describe(fieldErr validator.FieldError) error {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "gt":
		return fmt.Errorf("%s must be greater than %s", field, fieldErr.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, fieldErr.Param())
	case "currency_code":
		return fmt.Errorf("%s must be a three-letter currency code", field)
	default:
		return fmt.Errorf("%s failed %s validation", field, fieldErr.Tag())
	}
}

// Message joins validation errors into one line for the response body.
func Message(errs *[]error) string {
	if errs == nil {
		return ""
	}
	messages := []string{}
	for _, err := range *errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
