package result

import (
	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
)

// Context keys written onto every error accumulated by ProcessBatch.
const (
	ContextItemIndex = "item_index"
	ContextItemValue = "item_value"
	ContextTotal     = "total_items"
)

// ProcessBatch applies fn to every item in input order, accumulating
// failures instead of short-circuiting. This is the deliberate opposite of
// a Then chain: every item is attempted so the caller gets complete
// diagnostic coverage in a single pass.
//
// Successful transformations are appended to the returned slice in input
// order. Each failure is wrapped with the batch operation label and the
// context keys item_index, item_value, and total_items, then appended to
// the returned accumulator. The caller decides overall success via
// errors.HasErrors():
//
//	processed, errs := result.ProcessBatch(names, "normalize_names", normalize)
//	if errs.HasErrors() {
//	    for _, e := range errs.Errors() {
//	        log.Warn("item failed", "error", e)
//	    }
//	}
func ProcessBatch[T, U any](items []T, operation string, fn func(T) Result[U]) ([]U, *pygonerr.MultiError) {
	processed := make([]U, 0, len(items))
	errs := pygonerr.NewMultiError(operation)

	for i, item := range items {
		r := fn(item)
		if r.IsErr() {
			e := pygonerr.From(r.UnwrapErr())
			errs.Append(pygonerr.Wrap(e, operation, map[string]any{
				ContextItemIndex: i,
				ContextItemValue: item,
				ContextTotal:     len(items),
			}))
			continue
		}
		processed = append(processed, r.Unwrap())
	}

	return processed, errs
}
