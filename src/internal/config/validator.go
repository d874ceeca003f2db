package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
		isNil bool
	}{
		{"server", c.Server, c.Server == nil},
		{"storage", c.Storage, c.Storage == nil},
		{"admin", c.Admin, c.Admin == nil},
		{"cors", c.CORS, c.CORS == nil},
	}

	for _, section := range sections {
		if section.isNil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: section.name,
				Message:   "configuration must contain '" + section.name + "' section",
			})
			continue
		}
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			// Namespace is "StructName.field[0]"; drop the struct name
			fieldPath := e.Namespace()
			if idx := strings.Index(fieldPath, "."); idx >= 0 {
				fieldPath = fieldPath[idx+1:]
			}
			if fieldPrefix != "" {
				fieldPath = fieldPrefix + "." + fieldPath
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
