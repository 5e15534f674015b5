// Package config provides configuration loading from environment variables,
// files (YAML/JSON), and struct tag defaults for Pygon applications. Values
// are resolved in priority order:
//
//	envDefault struct tags  (lowest priority)
//	YAML/JSON config file  (medium priority)
//	Environment variables  (highest priority)
//
// The package doubles as the reference consumer of the fault boundary: file
// reads and parsing are the canonical exception-raising collaborators, so
// every fault they produce is routed through safecall before it enters
// Result-typed code. A missing required file surfaces as
// file_not_found_error, malformed YAML or JSON as json_parse_error, and
// loader misuse as configuration_error.
//
// # Struct Tags
//
// The loader uses three struct tags:
//
//   - `env:"VAR_NAME"` — maps the field to an environment variable
//   - `envDefault:"value"` — sets a default when the field is zero-valued
//   - `required:"true"` — fails validation if the field remains zero after loading
//
// Fields must also carry `yaml` or `json` tags for file-based loading.
//
// # Usage
//
//	type AppConfig struct {
//	    Host    string        `env:"HOST" envDefault:"localhost" yaml:"host"`
//	    Port    int           `env:"PORT" envDefault:"8080" yaml:"port" required:"true"`
//	    Timeout time.Duration `env:"TIMEOUT" envDefault:"30s" yaml:"timeout"`
//	}
//
//	cfg := config.MustLoad[AppConfig](
//	    config.New().WithEnvPrefix("APP").WithFile("config.yaml"),
//	)
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
	"github.com/pygon-io/pygon-core/pkg/safecall"
)

// durationType caches the reflect.Type for time.Duration. Duration has
// Kind() == Int64, so it must be distinguished from plain int64 fields.
var durationType = reflect.TypeOf(time.Duration(0))

// Loader builds and executes configuration loading with a layered
// resolution strategy. Use [New] to create a Loader and configure it with
// [Loader.WithEnvPrefix] and [Loader.WithFile] before calling [Loader.Load].
//
// Loader is not safe for concurrent use. Create a new Loader for each Load
// call, or synchronize access externally.
type Loader struct {
	envPrefix string
	filePath  string
	fileMust  bool
}

// New creates a new [Loader] with default settings: environment variables
// only, no file, no prefix.
func New() *Loader {
	return &Loader{}
}

// WithEnvPrefix sets a prefix that is prepended (with an underscore
// separator) to all environment variable names derived from the "env"
// struct tag. WithEnvPrefix("APP") makes a field tagged `env:"HOST"` read
// from APP_HOST. The prefix is uppercased; an empty prefix disables
// prefixing. Returns the Loader for fluent chaining.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = strings.ToUpper(prefix)
	return l
}

// WithFile sets the path to an optional YAML or JSON configuration file,
// detected by extension (.yaml/.yml/.json). A missing optional file is
// skipped silently; see [Loader.WithRequiredFile] when absence is an error.
// The path must not contain directory traversal sequences ("..").
// Returns the Loader for fluent chaining.
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	l.fileMust = false
	return l
}

// WithRequiredFile is WithFile for deployments where the file must exist:
// absence surfaces as a file_not_found_error instead of being skipped.
func (l *Loader) WithRequiredFile(path string) *Loader {
	l.filePath = path
	l.fileMust = true
	return l
}

// Load populates the given struct pointer with configuration values
// resolved in priority order (highest wins):
//
//  1. envDefault struct tags
//  2. YAML/JSON file values (if configured)
//  3. Environment variables from "env" struct tags
//
// After loading, the struct is validated: every field tagged
// `required:"true"` must hold a non-zero value, and if the struct
// implements [Validator] its Validate method is called.
//
// Errors are structured: loader misuse and unusable values return a
// configuration_error, file faults return the kind the boundary classifier
// assigns (file_not_found_error, permission_error, json_parse_error, ...),
// and required-field gaps are accumulated into a single
// [*pygonerr.MultiError] covering every missing field.
func (l *Loader) Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return pygonerr.Configuration("config: Load requires a non-nil pointer to a struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return pygonerr.Configuration("config: Load requires a pointer to a struct")
	}

	if err := applyDefaults(rv); err != nil {
		return err
	}

	if l.filePath != "" {
		if err := l.loadFile(cfg); err != nil {
			return err
		}
	}

	if err := applyEnv(rv, l.envPrefix); err != nil {
		return err
	}

	return validate(cfg, rv)
}

// MustLoad is a generic convenience that creates a zero-valued T, loads
// configuration into it, and returns the populated value. It panics if
// loading or validation fails. Use it in application startup where an
// invalid configuration should prevent the process from starting.
//
// Example:
//
//	cfg := config.MustLoad[AppConfig](config.New().WithEnvPrefix("APP"))
func MustLoad[T any](loader *Loader) T {
	var cfg T
	if err := loader.Load(&cfg); err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

// loadFile reads and parses the configured file through the fault boundary,
// then wraps any classified fault with the load operation and file path.
func (l *Loader) loadFile(cfg any) error {
	// Reject directory traversal before touching the filesystem.
	if strings.Contains(l.filePath, "..") {
		return pygonerr.Configuration(
			"config: file path must not contain directory traversal (..) sequences").
			WithContextValue("path", l.filePath)
	}

	read := safecall.Do(func() ([]byte, error) {
		return os.ReadFile(l.filePath)
	})
	data, err := read.Value()
	if err != nil {
		if pygonerr.IsFileNotFound(err) && !l.fileMust {
			return nil // optional file, nothing to merge
		}
		// Keep the classified kind (file_not_found_error, permission_error,
		// ...) so callers can match on it; only enrich the context.
		return pygonerr.From(err).WithContextValue("path", l.filePath)
	}

	ext := strings.ToLower(filepath.Ext(l.filePath))

	switch ext {
	case ".yaml", ".yml":
		res := safecall.Call(func() error {
			return yaml.Unmarshal(data, cfg)
		}, safecall.WithRule(yamlParseRule))
		if _, err := res.Value(); err != nil {
			return pygonerr.From(err).WithContext(map[string]any{
				"path": l.filePath, "format": "yaml",
			})
		}
	case ".json":
		res := safecall.Call(func() error {
			return json.Unmarshal(data, cfg)
		})
		if _, err := res.Value(); err != nil {
			return pygonerr.From(err).WithContext(map[string]any{
				"path": l.filePath, "format": "json",
			})
		}
	default:
		return pygonerr.Configurationf(
			"config: unsupported file extension %q (use .yaml, .yml, or .json)", ext).
			WithContextValue("path", l.filePath)
	}

	return nil
}

// yamlParseRule classifies every fault from the YAML decoder as malformed
// serialized data. The decoder's errors do not share a sentinel with
// encoding/json, so the default table cannot recognize them.
func yamlParseRule(error) (pygonerr.Kind, bool) {
	return pygonerr.KindJSONParse, true
}

// applyDefaults recursively traverses the struct and sets fields to their
// envDefault tag values when the field holds its zero value.
func applyDefaults(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct && sf.Type != durationType {
			if err := applyDefaults(field); err != nil {
				return err
			}
			continue
		}

		tag := sf.Tag.Get("envDefault")
		if tag == "" || !field.IsZero() {
			continue
		}

		if err := setField(field, tag); err != nil {
			return pygonerr.Wrap(pygonerr.From(err), "apply_config_default",
				map[string]any{"field": sf.Name})
		}
	}

	return nil
}

// applyEnv recursively traverses the struct and sets fields from
// environment variables named by the "env" struct tag. For nested structs
// the parent's env tag joins the prefix chain with "_".
func applyEnv(rv reflect.Value, prefix string) error {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		envTag := sf.Tag.Get("env")

		if field.Kind() == reflect.Struct && sf.Type != durationType {
			nestedPrefix := prefix
			if envTag != "" {
				if nestedPrefix != "" {
					nestedPrefix = nestedPrefix + "_" + envTag
				} else {
					nestedPrefix = envTag
				}
			}
			if err := applyEnv(field, nestedPrefix); err != nil {
				return err
			}
			continue
		}

		if envTag == "" {
			continue
		}

		envKey := envTag
		if prefix != "" {
			envKey = prefix + "_" + envTag
		}

		val, ok := os.LookupEnv(envKey)
		if !ok {
			continue
		}

		if err := setField(field, val); err != nil {
			return pygonerr.Wrap(pygonerr.From(err), "apply_config_env",
				map[string]any{"field": sf.Name, "env_var": envKey})
		}
	}

	return nil
}

// setField parses the string value and sets the reflect.Value according to
// its kind. Supported: string (and named string types), bool, signed ints,
// time.Duration, and []string (comma-separated, trimmed). Parse failures
// come back as validation errors from the boundary classifier's value
// format rules where applicable.
func setField(field reflect.Value, value string) error {
	// Duration first: its underlying kind is int64 but it needs
	// time.ParseDuration.
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return pygonerr.Validationf("cannot parse duration %q", value).WithCause(err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return pygonerr.Validationf("cannot parse bool %q", value).WithCause(err)
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return pygonerr.Validationf("cannot parse integer %q", value).WithCause(err)
		}
		field.SetInt(n)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return pygonerr.Configurationf(
				"unsupported slice element type %s", field.Type().Elem().Kind())
		}
		parts := strings.Split(value, ",")
		// MakeSlice with the field's actual type supports named slice
		// types; reflect.ValueOf(parts) would panic on Set for those.
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			slice.Index(i).SetString(strings.TrimSpace(p))
		}
		field.Set(slice)

	default:
		return pygonerr.Configurationf("unsupported field type %s", field.Kind())
	}

	return nil
}
