package nullops

// Addable is implemented by types that can add another instance of themselves.
type Addable[T any] interface {
	Add(other T) T
}

// Subtractable is implemented by types that can subtract another instance of themselves.
type Subtractable[T any] interface {
	Subtract(other T) T
}

// Multipliable is implemented by types that can multiply by another instance of themselves.
type Multipliable[T any] interface {
	Multiply(other T) T
}

// Dividable is implemented by types that can divide by another instance of themselves.
type Dividable[T any] interface {
	Divide(other T) T
}

// Scalable is implemented by types that can be multiplied by a scalar factor.
type Scalable[T any] interface {
	Scale(factor float64) T
}

// AddValues returns a.Add(b) when both are present, otherwise whichever
// operand is present, unchanged. There is no identity element for an
// arbitrary T, so none is invented.
func AddValues[T Addable[T]](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return x.Add(y) })
}

// SubtractValues returns a.Subtract(b) when both are present, otherwise
// whichever operand is present, unchanged. Note that SubtractValues(None, b)
// is b, not a negated b.
func SubtractValues[T Subtractable[T]](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return x.Subtract(y) })
}

// MultiplyValues returns a.Multiply(b) when both are present, otherwise
// whichever operand is present, unchanged.
func MultiplyValues[T Multipliable[T]](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return x.Multiply(y) })
}

// DivideValues returns a.Divide(b) when both are present, otherwise
// whichever operand is present, unchanged.
func DivideValues[T Dividable[T]](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return x.Divide(y) })
}

// ScaleValue returns v.Scale(factor) when both are present. An absent v
// stays absent; an absent factor returns v unchanged.
func ScaleValue[T Scalable[T]](v Option[T], factor Option[float64]) Option[T] {
	return Apply(v, factor, func(x T, f float64) T { return x.Scale(f) })
}
