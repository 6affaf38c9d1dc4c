package nullops

import "cmp"

// Fold reduces values from the left with op, starting from an absent value.
// An empty slice folds to absent.
//
// Fold adds nothing to op: folding with AddValues over records keeps the
// first present record's identity, folding with Add sums numbers.
func Fold[T any](values []Option[T], op func(a, b Option[T]) Option[T]) Option[T] {
	var acc Option[T]
	for _, v := range values {
		acc = op(acc, v)
	}
	return acc
}

// Sum adds all values, skipping absent ones. Absent if every value is absent.
func Sum[N Number](values ...Option[N]) Option[N] {
	return Fold(values, Add[N])
}

// Min returns the smaller of a and b, ranking an absent value after any
// present one. Absent only when both are absent.
func Min[T cmp.Ordered](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the larger of a and b, ranking an absent value before any
// present one. Absent only when both are absent.
func Max[T cmp.Ordered](a, b Option[T]) Option[T] {
	return Combine(a, b, func(x, y T) T { return max(x, y) })
}

// MinFunc is Min for types ordered by a comparison function, such as time.Time
// with time.Time.Compare.
func MinFunc[T any](a, b Option[T], compare func(x, y T) int) Option[T] {
	return Combine(a, b, func(x, y T) T {
		if compare(y, x) < 0 {
			return y
		}
		return x
	})
}

// MaxFunc is Max for types ordered by a comparison function.
func MaxFunc[T any](a, b Option[T], compare func(x, y T) int) Option[T] {
	return Combine(a, b, func(x, y T) T {
		if compare(y, x) > 0 {
			return y
		}
		return x
	})
}
