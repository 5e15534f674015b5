package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Error is the structured error record for Pygon-style error handling.
// It implements the standard error interface and carries everything a
// diagnostic consumer needs: classification, message, domain context,
// technical metadata, the construction instant, and the source location.
//
// Error is designed to be:
//   - Immutable: no field is modified after construction; the With* methods
//     return a new value and defensively copy the maps
//   - Chainable: the Cause field links to the prior error, if any
//   - Shareable: because values never mutate, they may be read concurrently
//     without synchronization
//   - Loggable: implements fmt.Formatter for detailed output
type Error struct {
	// Kind is the machine-readable classification tag (e.g., "validation_error").
	Kind Kind

	// Message is the human-readable error message.
	// It may be shown to end users and should not contain sensitive
	// information such as internal paths or credentials.
	Message string

	// Context holds domain-level facts about the failure site, such as
	// which field failed validation or which entity was requested.
	Context map[string]any

	// Metadata holds technical detail for debugging, distinct from domain
	// context: foreign fault types, correlation identifiers, wrap bookkeeping.
	Metadata map[string]any

	// Timestamp is the RFC 3339 UTC instant captured exactly once when the
	// error was constructed. It is never recomputed.
	Timestamp string

	// Source is the file:line location where the error was constructed.
	Source string

	// Cause is the underlying error, if any. Use Unwrap() to traverse the
	// chain with errors.Is and errors.As. The chain is acyclic by
	// construction order: no error can reference one created after it.
	Cause error
}

// Error implements the error interface, returning the legacy projection
// "<kind>: <message>". This exact format is relied upon by string-based
// callers; it never includes context, metadata, or the cause.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause of this error, supporting
// errors.Unwrap, errors.Is, and errors.As from the standard library.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status code associated with the error's kind.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// DetailedString renders the full record as a single pipe-separated line
// with a fixed field order:
//
//	Error: <kind> | Message: <msg> | Timestamp: <ts> | Source: <loc>
//	  [| Context: {...}] [| Metadata: {...}] [| Cause: <cause text>]
//
// Context, Metadata, and Cause are omitted entirely when empty; they are
// never rendered as empty labels. Map fields are rendered with keys sorted
// so the output is deterministic.
func (e *Error) DetailedString() string {
	parts := []string{
		"Error: " + string(e.Kind),
		"Message: " + e.Message,
		"Timestamp: " + e.Timestamp,
		"Source: " + e.Source,
	}
	if len(e.Context) > 0 {
		parts = append(parts, "Context: "+renderMap(e.Context))
	}
	if len(e.Metadata) > 0 {
		parts = append(parts, "Metadata: "+renderMap(e.Metadata))
	}
	if e.Cause != nil {
		parts = append(parts, "Cause: "+e.Cause.Error())
	}
	return strings.Join(parts, " | ")
}

// WithContext returns a new Error with the given entries merged into its
// context. New entries override existing keys. The receiver is not modified.
func (e *Error) WithContext(entries map[string]any) *Error {
	clone := *e
	clone.Context = mergeMaps(e.Context, entries)
	return &clone
}

// WithContextValue returns a new Error with a single context entry added.
// The receiver is not modified.
func (e *Error) WithContextValue(key string, value any) *Error {
	return e.WithContext(map[string]any{key: value})
}

// WithMetadata returns a new Error with the given entries merged into its
// metadata. New entries override existing keys. The receiver is not modified.
func (e *Error) WithMetadata(entries map[string]any) *Error {
	clone := *e
	clone.Metadata = mergeMaps(e.Metadata, entries)
	return &clone
}

// WithMetadataValue returns a new Error with a single metadata entry added.
// The receiver is not modified.
func (e *Error) WithMetadataValue(key string, value any) *Error {
	return e.WithMetadata(map[string]any{key: value})
}

// WithCause returns a new Error with the given cause attached. The
// timestamp and source of the receiver are preserved, not recaptured.
// The receiver is not modified.
func (e *Error) WithCause(cause error) *Error {
	clone := *e
	clone.Context = mergeMaps(e.Context, nil)
	clone.Metadata = mergeMaps(e.Metadata, nil)
	clone.Cause = cause
	return &clone
}

// Format implements fmt.Formatter. Use %v or %s for the legacy projection,
// %+v for the full pipe-separated record, and %q for the quoted projection.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.DetailedString())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// renderMap formats a map as {k1=v1, k2=v2} with keys sorted.
func renderMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	b.WriteByte('}')
	return b.String()
}

// mergeMaps returns a fresh map containing base overlaid with extra.
// Neither input is modified; a nil result is never returned for non-empty
// inputs. Returns nil when both inputs are empty so zero-value errors keep
// nil maps.
func mergeMaps(base, extra map[string]any) map[string]any {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
