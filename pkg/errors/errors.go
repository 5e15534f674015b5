// Package errors provides the structured error record used throughout the
// Pygon core libraries. It defines an immutable error value carrying a
// machine-readable kind, a human-readable message, separate domain context
// and technical metadata maps, a construction timestamp, the source location
// of the failure, and an optional cause.
//
// # Error Kinds
//
// Every error carries a [Kind] that classifies the failure:
//
//   - Validation errors: invalid input, missing required fields
//   - NotFound errors: a requested entity does not exist
//   - FileNotFound errors: a file or directory is absent
//   - Permission errors: access denied by the operating system or a policy
//   - JSONParse errors: malformed serialized data (JSON, YAML, ...)
//   - FileIO errors: read/write failures other than absence or permission
//   - Wrapped errors: an existing error re-wrapped with boundary context
//   - Uncategorized errors: faults no classification rule recognized
//
// Automated consumers must branch on the kind, never on message text; the
// message is for humans and carries no stability guarantee.
//
// # Context vs. Metadata
//
// Context holds domain-level facts about the failure site (which field
// failed, which entity was requested). Metadata holds technical detail for
// debugging (foreign fault types, correlation identifiers). Both are
// defensively copied on every write; an Error never changes after it is
// built.
//
// # Usage
//
// Create a new error:
//
//	err := errors.Validation("email is required").
//	    WithContextValue("field", "email")
//
// Wrap an existing error as it crosses a boundary:
//
//	err = errors.Wrap(err, "register_user", map[string]any{"tenant": "acme"})
//
// Render for legacy string-based callers:
//
//	msg := err.Error() // "validation_error: email is required"
//
// Render the full record for diagnostics:
//
//	detail := err.DetailedString()
//
// Check the classification anywhere in a chain:
//
//	if errors.IsNotFound(err) {
//	    // handle absence
//	}
package errors
