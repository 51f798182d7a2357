package ptgeom

import "fmt"

// Option holds a value that may be absent. The zero value is absent.
type Option[T any] struct {
	isSet bool
	value T
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{isSet: true, value: v}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is set.
func (opt Option[T]) Get() (T, bool) {
	return opt.value, opt.isSet
}

// IsSet reports whether the option holds a value.
func (opt Option[T]) IsSet() bool {
	return opt.isSet
}

// Unwrap returns the value, panicking if it isn't set.
func (opt Option[T]) Unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}

func (opt Option[T]) String() string {
	if !opt.isSet {
		return "none"
	}
	return fmt.Sprint(opt.value)
}
