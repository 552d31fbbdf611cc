package util

// Optional carries a value that may be absent, without resorting to pointers
// or zero-value ambiguity.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		value: v,
		ok:    true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (me *Optional[T]) Unpack() (T, bool) {
	return me.value, me.ok
}

// Or returns the contained value, or defaultValue when absent.
func (me *Optional[T]) Or(defaultValue T) T {
	if me.ok {
		return me.value
	}
	return defaultValue
}
