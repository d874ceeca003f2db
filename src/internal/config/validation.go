package config

import (
	"fmt"
	"net/netip"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "hostname_port":
		return "must be in format 'host:port'"
	case "ip_or_cidr":
		return "must be a valid IP address or CIDR prefix"
	case "file_template":
		return "must be a file name containing the {{collection}} placeholder"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "storage.backend")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("ip_or_cidr", validateIPOrCIDR); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("file_template", validateFileTemplate); err != nil {
		panic(err)
	}

	// Report field names from the "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateIPOrCIDR(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if strings.Contains(value, "/") {
		_, err := netip.ParsePrefix(value)
		return err == nil
	}
	_, err := netip.ParseAddr(value)
	return err == nil
}

func validateFileTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !strings.Contains(value, "{{collection}}") || strings.ContainsAny(value, `/\`) {
		return false
	}
	_, err := fasttemplate.NewTemplate(value, "{{", "}}")
	return err == nil
}
