// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// `loader.go` calls validateStruct right after defaults are applied.  Any
// tag mismatch aborts startup, so the binary never runs with a malformed
// configuration.  The one custom rule, `dsn_verbs`, rejects DSN templates
// with more than one `%s`.

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("dsn_verbs", func(fl validator.FieldLevel) bool {
		return strings.Count(fl.Field().String(), "%s") <= 1
	})
	return val
}

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
