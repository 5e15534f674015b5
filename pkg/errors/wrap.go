package errors

// Metadata and context keys written by Wrap.
const (
	// ContextWrappedOperation is the context key forced onto every wrapped
	// error, holding the operation label passed to Wrap.
	ContextWrappedOperation = "wrapped_operation"

	// MetadataOriginalKind records the kind the error had before wrapping.
	MetadataOriginalKind = "original_error_type"

	// MetadataWrapOperation records the operation label in metadata.
	MetadataWrapOperation = "wrap_operation"
)

// Wrap builds a new error from original, adding boundary context without
// mutating it. The result has:
//
//   - Kind: KindWrapped
//   - Message: "<operation>: <original.Message>"
//   - Context: original's context merged with extra (extra wins on
//     conflict), plus the forced key "wrapped_operation"
//   - Metadata: original's metadata plus "original_error_type" and
//     "wrap_operation", with a fresh error_id for the wrapper
//   - Cause: original's own cause when it has one, otherwise original itself
//
// The cause selection keeps chains flat: wrapping an already-wrapped error
// points at the same root rather than stacking near-identical wrappers one
// per boundary. Unwrap still reaches the root, so errors.Is and errors.As
// see the full chain.
//
// Wrap never mutates original; it remains independently usable and equal to
// its pre-call state. A nil original returns nil.
//
// Example:
//
//	err := errors.NotFound("user not found")
//	wrapped := errors.Wrap(err, "lookup_user", map[string]any{"user_id": 42})
//	wrapped.Error() // "wrapped_error: lookup_user: user not found"
func Wrap(original *Error, operation string, extra map[string]any) *Error {
	if original == nil {
		return nil
	}

	e := newError(KindWrapped, operation+": "+original.Message, 2)

	e.Context = mergeMaps(original.Context, extra)
	if e.Context == nil {
		e.Context = make(map[string]any, 1)
	}
	e.Context[ContextWrappedOperation] = operation

	// Wrap bookkeeping overrides any same-named entries from the original;
	// the wrapper's own error_id is kept, not the original's.
	e.Metadata = mergeMaps(original.Metadata, map[string]any{
		MetadataOriginalKind:  string(original.Kind),
		MetadataWrapOperation: operation,
		MetadataErrorID:       e.Metadata[MetadataErrorID],
	})

	if original.Cause != nil {
		e.Cause = original.Cause
	} else {
		e.Cause = original
	}
	return e
}
