package nullops

// Combine merges two optional values with f, passing a lone present value
// through untouched.
//
//	Combine(None, None, f) = None
//	Combine(a, None, f)    = a
//	Combine(None, b, f)    = b
//	Combine(a, b, f)       = f(a, b)
//
// f is only called when both sides are present. It is the building block of
// every capability operator and is exported for custom reductions.
func Combine[T any](a, b Option[T], f func(T, T) T) Option[T] {
	switch {
	case !a.ok:
		return b
	case !b.ok:
		return a
	default:
		return Some(f(a.value, b.value))
	}
}

// Apply transforms a with a second argument x that may have another type.
//
//	Apply(None, x, f)    = None
//	Apply(a, None, f)    = a
//	Apply(a, x, f)       = f(a, x)
//
// Unlike Combine, an absent a always yields absence: x parameterizes a unary
// transform of a, it is not merged with it.
func Apply[T, U any](a Option[T], x Option[U], f func(T, U) T) Option[T] {
	if !a.ok {
		return a
	}
	if !x.ok {
		return a
	}
	return Some(f(a.value, x.value))
}

// Map transforms a present value with f and keeps absence absent.
//
//	Map(None, f) = None
//	Map(a, f)    = f(a)
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if !o.ok {
		return None[R]()
	}
	return Some(f(o.value))
}
