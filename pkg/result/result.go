// Package result provides the two-variant success/failure container used in
// place of raised panics for all fallible Pygon operations, together with
// the combinators that chain them.
//
// A Result is either Ok, holding a value, or Err, holding an error. The tag
// is fixed at construction and no operation ever treats one variant as the
// other. Failures are ordinary *errors.Error values from
// github.com/pygon-io/pygon-core/pkg/errors, constructed once at their
// origin and optionally re-wrapped as they cross boundaries.
//
// # Consuming a Result
//
// Outside the combinators, consume a Result either with the two-way Value
// dispatch:
//
//	v, err := findUser(id).Value()
//	if err != nil {
//	    return err
//	}
//
// or with Match:
//
//	res.Match(
//	    func(u User) { log.Info("found", "user", u.Name) },
//	    func(err error) { log.Error("lookup failed", "error", err) },
//	)
//
// Unwrap and UnwrapErr are assertions, not inspection: calling them against
// the wrong variant is a contract violation and panics. They must never be
// reachable from unchecked external input.
//
// # Chaining
//
// Map, MapErr, and Then are package functions because Go methods cannot
// introduce new type parameters. Then is the fail-fast backbone: chains
// evaluate strictly left to right and stop at the first Err.
//
//	res := result.Then(validateEmail(email), func(string) result.Result[User] {
//	    return createUser(name, email)
//	})
package result

import "fmt"

// Result is a tagged union: exactly one of Ok(value) or Err(error).
// The zero value is an Ok holding T's zero value; prefer the explicit
// constructors. Result values are immutable and safe to share.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a success Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failure Result holding err.
// A nil err is a programming error and panics: a failure variant without a
// failure is the same fatality class as unwrapping the wrong variant.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result is the failure variant.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap returns the Ok payload. It panics when called on an Err: that is
// a fatal contract violation, not a recoverable condition. Never call
// Unwrap on a Result derived from unchecked external input; branch on it
// explicitly instead.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: Unwrap called on Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the Err payload. It panics when called on an Ok,
// symmetric to Unwrap.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic(fmt.Sprintf("result: UnwrapErr called on Ok: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the Ok payload, or def when the Result is an Err.
// It never panics.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Value is the exhaustive two-way dispatch in plain Go form: it returns the
// payload and the error, exactly one of which is meaningful.
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Match invokes onOk with the payload or onErr with the error, whichever
// variant the Result holds. A nil handler for the matching variant is a
// no-op.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.err != nil {
		if onErr != nil {
			onErr(r.err)
		}
		return
	}
	if onOk != nil {
		onOk(r.value)
	}
}
