package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report JSON field names so messages match the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateProduct checks the presence of required product fields.
func validateProduct(p *models.Product) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return apperrors.NewBadRequest("Invalid product data")
	}

	missing := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		missing = append(missing, e.Field())
	}
	return apperrors.NewBadRequest("Missing required fields: " + strings.Join(missing, ", "))
}
