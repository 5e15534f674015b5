package safecall

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
)

// Rule inspects a foreign fault and reports the kind it maps to. A rule
// returns false to pass the fault on to the next rule in the table.
type Rule func(err error) (pygonerr.Kind, bool)

// Option configures the classification table for a single Do or Call.
type Option func(*classifier)

// WithKindFor maps every fault matching target (via errors.Is) to kind.
// Caller-supplied mappings are consulted before the package defaults.
func WithKindFor(target error, kind pygonerr.Kind) Option {
	return WithRule(func(err error) (pygonerr.Kind, bool) {
		if errors.Is(err, target) {
			return kind, true
		}
		return "", false
	})
}

// WithRule appends a caller-supplied rule. Rules run in the order given,
// all of them before the package defaults.
func WithRule(rule Rule) Option {
	return func(c *classifier) {
		c.rules = append(c.rules, rule)
	}
}

// WithoutDefaults drops the package default table, leaving only
// caller-supplied rules and the uncategorized fallback.
func WithoutDefaults() Option {
	return func(c *classifier) {
		c.defaults = nil
	}
}

type classifier struct {
	rules    []Rule
	defaults []Rule
}

func newClassifier(opts ...Option) *classifier {
	c := &classifier{defaults: defaultRules}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// classify converts a foreign fault into a structured error. The mapped
// kind becomes the error kind, the fault text becomes the message, and the
// fault itself is attached as the cause with its Go type in metadata.
// Faults already carrying a structured record pass through unchanged.
func (c *classifier) classify(err error) *pygonerr.Error {
	if e, ok := pygonerr.As(err); ok {
		return e
	}

	for _, rule := range c.rules {
		if kind, ok := rule(err); ok {
			return convert(kind, err)
		}
	}
	for _, rule := range c.defaults {
		if kind, ok := rule(err); ok {
			return convert(kind, err)
		}
	}
	return convert(pygonerr.KindUncategorized, err)
}

func convert(kind pygonerr.Kind, err error) *pygonerr.Error {
	// %T names the outermost concrete fault type, which is what a debugger
	// wants to see; the full chain stays reachable through the cause.
	return pygonerr.New(kind, err.Error()).
		WithCause(err).
		WithMetadataValue(MetadataFaultType, fmt.Sprintf("%T", err))
}

// defaultRules is the library-provided classification table for common
// fault categories. Order matters: sentinel checks for absence and
// permission run before the broad *fs.PathError catch-all so that a missing
// file classifies as file_not_found_error rather than file_io_error.
var defaultRules = []Rule{
	// Resource absent.
	func(err error) (pygonerr.Kind, bool) {
		if errors.Is(err, fs.ErrNotExist) {
			return pygonerr.KindFileNotFound, true
		}
		return "", false
	},
	// Access denied.
	func(err error) (pygonerr.Kind, bool) {
		if errors.Is(err, fs.ErrPermission) {
			return pygonerr.KindPermission, true
		}
		return "", false
	},
	// Malformed serialized data.
	func(err error) (pygonerr.Kind, bool) {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return pygonerr.KindJSONParse, true
		}
		return "", false
	},
	// Value format faults.
	func(err error) (pygonerr.Kind, bool) {
		var numErr *strconv.NumError
		var parseErr *time.ParseError
		if errors.As(err, &numErr) || errors.As(err, &parseErr) {
			return pygonerr.KindValidation, true
		}
		return "", false
	},
	// Remaining filesystem and stream faults.
	func(err error) (pygonerr.Kind, bool) {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return pygonerr.KindFileIO, true
		}
		return "", false
	},
}
