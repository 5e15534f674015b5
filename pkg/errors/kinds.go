package errors

import "net/http"

// Kind classifies errors into machine-readable categories. Kinds are
// stringly-typed so they survive serialization boundaries unchanged and so
// downstream projects can introduce their own kinds without a central enum.
//
// Kinds are designed to be:
//   - Stable: a kind never changes meaning once assigned
//   - Matchable: automated consumers branch on Kind, never on message text
//   - Renderable: the kind is the first component of the legacy projection
type Kind string

const (
	// KindValidation indicates input that failed a validation rule.
	KindValidation Kind = "validation_error"

	// KindNotFound indicates a requested entity does not exist.
	KindNotFound Kind = "not_found_error"

	// KindFileNotFound indicates a file or directory is absent.
	KindFileNotFound Kind = "file_not_found_error"

	// KindPermission indicates access was denied.
	KindPermission Kind = "permission_error"

	// KindJSONParse indicates malformed serialized data (JSON, YAML, ...).
	KindJSONParse Kind = "json_parse_error"

	// KindFileIO indicates a read or write failure that is neither an
	// absence (KindFileNotFound) nor a denial (KindPermission).
	KindFileIO Kind = "file_io_error"

	// KindWrapped marks an error produced by [Wrap]. The pre-wrap kind is
	// preserved in metadata under "original_error_type".
	KindWrapped Kind = "wrapped_error"

	// KindConfiguration indicates the configuration layer itself was
	// misused or produced an unusable result.
	KindConfiguration Kind = "configuration_error"

	// KindUncategorized is the single fallback for faults no classification
	// rule recognized. There is deliberately no name-derived kind: an
	// unknown fault category maps here, never to a guessed tag.
	KindUncategorized Kind = "uncategorized_error"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// HTTPStatus returns the HTTP status code conventionally associated with
// the kind. Unknown kinds map to 500 Internal Server Error.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindJSONParse:
		return http.StatusBadRequest
	case KindNotFound, KindFileNotFound:
		return http.StatusNotFound
	case KindPermission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
