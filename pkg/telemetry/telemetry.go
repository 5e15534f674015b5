// Package telemetry bridges structured errors into OpenTelemetry traces.
// It is a pure consumer of the error record's exported projections: the
// core constructs error values, and this package annotates spans with them
// for operators reading distributed traces.
package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
)

// Attribute keys set on spans by RecordError.
const (
	AttrErrorKind      = "pygon.error.kind"
	AttrErrorSource    = "pygon.error.source"
	AttrErrorTimestamp = "pygon.error.timestamp"
	AttrErrorID        = "pygon.error.id"
	attrContextPrefix  = "pygon.error.context."
)

// RecordError marks the span as failed and records err on it. For
// structured errors the event carries the kind, source location,
// construction timestamp, correlation identifier, and every domain context
// entry as attributes; plain errors are recorded with their message only.
//
// Nil errors, nil spans, and spans that are no longer recording are
// ignored.
func RecordError(span trace.Span, err error) {
	if err == nil || span == nil || !span.IsRecording() {
		return
	}

	span.SetStatus(codes.Error, err.Error())

	e, ok := pygonerr.As(err)
	if !ok {
		span.RecordError(err)
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(AttrErrorKind, string(e.Kind)),
		attribute.String(AttrErrorSource, e.Source),
		attribute.String(AttrErrorTimestamp, e.Timestamp),
	}
	if id, hasID := e.Metadata[pygonerr.MetadataErrorID].(string); hasID {
		attrs = append(attrs, attribute.String(AttrErrorID, id))
	}
	for k, v := range e.Context {
		attrs = append(attrs, attribute.String(attrContextPrefix+k, fmt.Sprint(v)))
	}

	span.RecordError(err, trace.WithAttributes(attrs...))
}

// RecordMultiError records every accumulated error on the span and marks
// it failed with the batch summary. An empty accumulator is a no-op.
func RecordMultiError(span trace.Span, errs *pygonerr.MultiError) {
	if errs == nil || !errs.HasErrors() || span == nil || !span.IsRecording() {
		return
	}

	for _, e := range errs.Errors() {
		RecordError(span, e)
	}
	// The batch summary wins as the final span status description.
	span.SetStatus(codes.Error, errs.Error())
}
