package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("themehex", func(fl validator.FieldLevel) bool {
			return theme.ValidHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation plus the per-role theme checks.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for _, role := range theme.Roles() {
		value := cfg.Theme.Get(role)
		if value != "" && !theme.ValidHex(value) {
			field := "theme." + role.String()
			return pterrors.NewValidationError(field, fmt.Sprintf("%s must be a #rgb or #rrggbb color, got %q", field, value), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pterrors.NewValidationError(field, msg, err)
	}

	return pterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, e.g.
// "Config.ai.host" becomes "ai.host".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
