// Package safecall adapts fault-raising units of work into Result-returning
// ones. It sits at the edge of the Result world: any collaborator that can
// return a foreign error or panic (file I/O, JSON/YAML parsing, third-party
// libraries) is invoked through this package, so that once a value is inside
// Result-typed code no further stack unwinding crosses a boundary.
//
// Classification is total and table-driven. Returned faults are matched
// against an ordered list of rules — caller-supplied entries first, then the
// package defaults — and every fault not recognized by any rule becomes a
// single well-defined uncategorized_error. There is deliberately no
// name-derived fallback: an unknown fault category maps to
// errors.KindUncategorized, never to a tag guessed from its type name.
//
//	res := safecall.Do(func() ([]byte, error) {
//	    return os.ReadFile(path)
//	})
//	// a missing file is now Err(file_not_found_error: ...)
//
// Extend the table per call site:
//
//	res := safecall.Do(parse,
//	    safecall.WithKindFor(io.ErrClosedPipe, errors.KindFileIO),
//	)
//
// Recovered panics are classified as uncategorized faults, with one
// exclusion: runtime.Error panics (nil dereference, index out of range,
// stack or memory exhaustion surfacing as runtime failures) are engine
// failures, not expected fault categories, and are re-panicked unconverted.
package safecall

import (
	"fmt"
	"runtime"

	pygonerr "github.com/pygon-io/pygon-core/pkg/errors"
	"github.com/pygon-io/pygon-core/pkg/result"
)

// MetadataFaultType is the metadata key recording the Go type of the
// foreign fault a classified error was built from.
const MetadataFaultType = "fault_type"

// MetadataPanicValue is the metadata key recording the recovered value when
// a classified error was built from a panic.
const MetadataPanicValue = "panic_value"

// Do invokes fn and converts its outcome into a Result.
//
// On normal completion Do returns Ok(value). A returned fault is classified
// through the rule table into a structured error with the fault's text as
// the message and the fault itself as the cause. A fault that already
// carries a structured *errors.Error passes through unreclassified.
//
// A non-runtime panic inside fn is recovered and classified as an
// uncategorized fault; runtime.Error panics propagate to the host
// environment unconverted.
func Do[T any](fn func() (T, error), opts ...Option) (res result.Result[T]) {
	c := newClassifier(opts...)

	defer func() {
		if r := recover(); r != nil {
			if _, fatal := r.(runtime.Error); fatal {
				panic(r)
			}
			res = result.Err[T](fromPanic(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return result.Err[T](c.classify(err))
	}
	return result.Ok(v)
}

// Call is Do for operations with no payload: it adapts a plain
// func() error into a Result whose Ok variant carries nothing.
func Call(fn func() error, opts ...Option) result.Result[struct{}] {
	return Do(func() (struct{}, error) {
		return struct{}{}, fn()
	}, opts...)
}

// fromPanic builds the structured error for a recovered panic value.
func fromPanic(v any) *pygonerr.Error {
	return pygonerr.Uncategorized(fmt.Sprint(v)).
		WithMetadataValue(MetadataPanicValue, fmt.Sprintf("%#v", v))
}
