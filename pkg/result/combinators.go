package result

// Map applies f to the Ok payload and returns the transformed Result.
// An Err passes through unchanged; f is never invoked and cannot inspect
// the error.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// MapErr applies f to the Err payload and returns a Result carrying the
// transformed error. An Ok passes through unchanged; f is never invoked.
// f must not return nil: an error cannot be transformed out of existence,
// only into another error.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// Then is the monadic bind: it evaluates f only when r is Ok. On Err it
// short-circuits, returning the original failure untouched. Chains of Then
// evaluate strictly left to right and stop at the first Err; this is the
// fail-fast backbone of the whole model.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}
