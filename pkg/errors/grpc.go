package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode returns the gRPC status code conventionally associated with the
// kind. Unknown kinds map to codes.Unknown.
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindValidation, KindJSONParse:
		return codes.InvalidArgument
	case KindNotFound, KindFileNotFound:
		return codes.NotFound
	case KindPermission:
		return codes.PermissionDenied
	case KindFileIO, KindConfiguration:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// GRPCStatus projects the error onto a gRPC status carrying the legacy
// "<kind>: <message>" text. Structured context and metadata are not encoded;
// services needing them should attach status details at the transport layer.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.GRPCCode(), e.Error())
}
