// Package options provides the generic functional-option plumbing shared by
// every configurable entry point in this module: codec.EncodeOption,
// codec.DecodeOption, and the root package's LoadOption/SaveOption all build
// on the same Option[T] mechanism rather than each hand-rolling its own
// apply-in-a-loop boilerplate.
package options

// Option configures a target of type T. Each concrete option type
// (codec.EncodeOption, spz.LoadOption, ...) is a named alias over
// Option[T] for its own config type, so call sites see a domain-specific
// type while sharing this implementation.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error { return f.fn(target) }

// New builds an Option from a function that can fail, e.g. one that
// rejects an out-of-range fractional-bits value.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError builds an Option from a function that cannot fail, e.g. one that
// just flips a boolean flag on the target.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs every option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
