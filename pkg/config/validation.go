package config

import (
	"reflect"

	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
)

// Validator is an optional interface configuration structs may implement
// for custom validation logic. If the struct passed to [Loader.Load]
// implements Validator, its Validate method is called after tag-based
// validation succeeds.
//
// Validate should return nil when the configuration is valid. A returned
// [*pygonerr.Error] passes through unchanged; any other error is normalized
// and wrapped as a validation failure.
//
// Example:
//
//	type DatabaseConfig struct {
//	    Host string `env:"HOST" required:"true"`
//	    Port int    `env:"PORT" required:"true"`
//	}
//
//	func (c *DatabaseConfig) Validate() error {
//	    if c.Port < 1 || c.Port > 65535 {
//	        return pygonerr.Validationf("config: port %d is out of range [1, 65535]", c.Port)
//	    }
//	    return nil
//	}
type Validator interface {
	Validate() error
}

// validate runs tag-based required validation and then the Validator
// interface if implemented. Required-field gaps are accumulated: the
// returned error covers every missing field in declaration order, not just
// the first, so one load attempt yields a complete report.
func validate(cfg any, rv reflect.Value) error {
	missing := pygonerr.NewMultiError("validate_required_config")
	collectRequired(rv, "", missing)
	if missing.HasErrors() {
		return missing
	}

	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			if e, isStructured := pygonerr.As(err); isStructured {
				return e
			}
			return pygonerr.Wrap(pygonerr.From(err), "validate_config", nil)
		}
	}

	return nil
}

// collectRequired recursively checks fields tagged `required:"true"` and
// appends a validation error for each zero-valued one. The path parameter
// tracks the dotted field path for error context (e.g., "Database.Host").
func collectRequired(rv reflect.Value, path string, missing *pygonerr.MultiError) {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldPath := sf.Name
		if path != "" {
			fieldPath = path + "." + sf.Name
		}

		// Recurse into nested structs (named struct types like time.Time
		// have no required-tagged fields of their own to find).
		if field.Kind() == reflect.Struct {
			collectRequired(field, fieldPath, missing)
			continue
		}

		if sf.Tag.Get("required") != "true" {
			continue
		}

		if field.IsZero() {
			missing.Append(
				pygonerr.Validationf("config: required field %q is empty", fieldPath).
					WithContextValue("field", fieldPath))
		}
	}
}
