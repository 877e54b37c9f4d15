package worldtides

// Result is the outcome of a single request: either a value or an error,
// never both. Every submitted request produces exactly one Result.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an error in a failed Result.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value and the error; exactly one of them is meaningful.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsSuccess reports whether the request produced a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Err returns the failure cause, or nil for a successful Result.
func (r Result[T]) Err() error {
	return r.err
}

// Callback receives the Result of an asynchronous request. It is invoked
// exactly once, on the goroutine that performed the request.
type Callback[T any] func(Result[T])
