package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// MetadataErrorID is the metadata key under which every constructed error
// carries a unique correlation identifier.
const MetadataErrorID = "error_id"

// newError builds the record, capturing the timestamp and the source
// location of the frame skip levels above this function. Constructors call
// it with skip == 2 so the recorded location is their caller's call site,
// never a shared or deferred capture.
func newError(kind Kind, message string, skip int) *Error {
	source := "unknown"
	if _, file, line, ok := runtime.Caller(skip); ok {
		source = filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	return &Error{
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Source:    source,
		Metadata:  map[string]any{MetadataErrorID: uuid.New().String()},
	}
}

// New creates a new Error with the specified kind and message. The
// timestamp and source location are captured at the call site.
//
// Example:
//
//	err := errors.New(errors.KindValidation, "email address is required")
func New(kind Kind, message string) *Error {
	return newError(kind, message, 2)
}

// Newf creates a new Error with the specified kind and formatted message.
//
// Example:
//
//	err := errors.Newf(errors.KindNotFound, "user %q not found", userID)
func Newf(kind Kind, format string, args ...any) *Error {
	return newError(kind, fmt.Sprintf(format, args...), 2)
}

// Validation creates a new validation error.
//
// Example:
//
//	err := errors.Validation("email is required")
func Validation(message string) *Error {
	return newError(KindValidation, message, 2)
}

// Validationf creates a new validation error with a formatted message.
//
// Example:
//
//	err := errors.Validationf("field %q must be at most %d characters", field, maxLen)
func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, fmt.Sprintf(format, args...), 2)
}

// NotFound creates a new not found error.
//
// Example:
//
//	err := errors.NotFound("user not found")
func NotFound(message string) *Error {
	return newError(KindNotFound, message, 2)
}

// NotFoundf creates a new not found error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, fmt.Sprintf(format, args...), 2)
}

// FileNotFound creates a new file not found error.
//
// Example:
//
//	err := errors.FileNotFound("config.yaml does not exist")
func FileNotFound(message string) *Error {
	return newError(KindFileNotFound, message, 2)
}

// FileNotFoundf creates a new file not found error with a formatted message.
func FileNotFoundf(format string, args ...any) *Error {
	return newError(KindFileNotFound, fmt.Sprintf(format, args...), 2)
}

// Permission creates a new permission error.
//
// Example:
//
//	err := errors.Permission("access to audit log denied")
func Permission(message string) *Error {
	return newError(KindPermission, message, 2)
}

// Permissionf creates a new permission error with a formatted message.
func Permissionf(format string, args ...any) *Error {
	return newError(KindPermission, fmt.Sprintf(format, args...), 2)
}

// JSONParse creates a new parse error for malformed serialized data.
//
// Example:
//
//	err := errors.JSONParse("unexpected end of input")
func JSONParse(message string) *Error {
	return newError(KindJSONParse, message, 2)
}

// JSONParsef creates a new parse error with a formatted message.
func JSONParsef(format string, args ...any) *Error {
	return newError(KindJSONParse, fmt.Sprintf(format, args...), 2)
}

// FileIO creates a new file I/O error.
//
// Example:
//
//	err := errors.FileIO("short write to journal")
func FileIO(message string) *Error {
	return newError(KindFileIO, message, 2)
}

// FileIOf creates a new file I/O error with a formatted message.
func FileIOf(format string, args ...any) *Error {
	return newError(KindFileIO, fmt.Sprintf(format, args...), 2)
}

// Configuration creates a new configuration error.
func Configuration(message string) *Error {
	return newError(KindConfiguration, message, 2)
}

// Configurationf creates a new configuration error with a formatted message.
func Configurationf(format string, args ...any) *Error {
	return newError(KindConfiguration, fmt.Sprintf(format, args...), 2)
}

// Uncategorized creates a new uncategorized error. Prefer a specific kind
// where one exists; this constructor serves classification fallbacks.
func Uncategorized(message string) *Error {
	return newError(KindUncategorized, message, 2)
}

// From converts a plain error into a structured *Error.
// If err already carries an *Error in its chain, that record is returned
// as-is. A nil err returns nil. Anything else becomes an uncategorized
// error with err attached as the cause.
//
// Example:
//
//	e := errors.From(err)
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	out := newError(KindUncategorized, err.Error(), 2)
	out.Cause = err
	return out
}
