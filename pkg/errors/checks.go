package errors

import (
	"errors"
)

// As attempts to extract a structured *Error from err's chain.
// Returns the Error and true if found, nil and false otherwise.
//
// Example:
//
//	if e, ok := errors.As(err); ok {
//	    logger.Error("operation failed", "kind", e.Kind, "message", e.Message)
//	}
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind carried by err. If err is nil or no *Error is
// found in its chain, it returns the empty kind.
//
// Example:
//
//	if errors.KindOf(err) == errors.KindNotFound {
//	    // handle absence
//	}
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}

// HasKind reports whether err carries the given kind.
// Returns false for nil errors and for errors without a structured record.
func HasKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsValidation reports whether err is classified as a validation error.
func IsValidation(err error) bool {
	return HasKind(err, KindValidation)
}

// IsNotFound reports whether err is classified as a not found error.
// File absence has its own kind; see IsFileNotFound.
func IsNotFound(err error) bool {
	return HasKind(err, KindNotFound)
}

// IsFileNotFound reports whether err is classified as a file not found error.
func IsFileNotFound(err error) bool {
	return HasKind(err, KindFileNotFound)
}

// IsPermission reports whether err is classified as a permission error.
func IsPermission(err error) bool {
	return HasKind(err, KindPermission)
}

// IsJSONParse reports whether err is classified as a parse error for
// malformed serialized data.
func IsJSONParse(err error) bool {
	return HasKind(err, KindJSONParse)
}

// IsFileIO reports whether err is classified as a file I/O error.
func IsFileIO(err error) bool {
	return HasKind(err, KindFileIO)
}

// IsWrapped reports whether err was produced by Wrap. The pre-wrap kind is
// available in metadata under MetadataOriginalKind.
func IsWrapped(err error) bool {
	return HasKind(err, KindWrapped)
}

// IsUncategorized reports whether err fell through classification.
func IsUncategorized(err error) bool {
	return HasKind(err, KindUncategorized)
}
