// Package result provides the success/failure outcome container returned by
// every dispatched operation. A Result is constructed exactly once through Ok
// or Fail and is immutable afterwards.
package result

import "fmt"

// Result holds either a value or a failure message, never both.
// The zero value is a failure with an empty message; callers should always
// construct Results through Ok, Fail or Failf.
type Result[T any] struct {
	ok    bool
	value T
	msg   string
}

// Ok returns a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail returns a failed Result carrying a human-readable message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{msg: msg}
}

// Failf returns a failed Result with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{msg: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result carries a failure message.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the carried value.
// It panics when called on a failure; use Get or ValueOr when the state
// has not been checked first.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on a failure (message: " + r.msg + ")")
	}
	return r.value
}

// Error returns the failure message.
// It panics when called on a success.
func (r Result[T]) Error() string {
	if r.ok {
		panic("result: Error called on a success")
	}
	return r.msg
}

// Get returns the value and true on success, or the zero value and false on
// failure. It never panics.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// ValueOr returns the value on success or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// ToAny erases the value type so a Result can cross the untyped dispatcher
// boundary.
func ToAny[T any](r Result[T]) Result[any] {
	if !r.ok {
		return Fail[any](r.msg)
	}
	return Ok[any](r.value)
}

// FromAny restores the value type after crossing the dispatcher boundary.
// A value of an unexpected dynamic type yields a failure rather than a panic.
func FromAny[T any](r Result[any]) Result[T] {
	if !r.ok {
		return Fail[T](r.msg)
	}
	v, ok := r.value.(T)
	if !ok {
		return Failf[T]("result: unexpected value type %T", r.value)
	}
	return Ok(v)
}
