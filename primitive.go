package nullops

import "math"

// Add returns a + b, treating an absent operand as 0.
// Absent only when both operands are absent.
func Add[N Number](a, b Option[N]) Option[N] {
	if !a.ok && !b.ok {
		return None[N]()
	}
	return Some(a.OrElse(0) + b.OrElse(0))
}

// Subtract returns a - b, treating an absent operand as 0, so
// Subtract(None, b) is -b. Absent only when both operands are absent.
func Subtract[N Number](a, b Option[N]) Option[N] {
	if !a.ok && !b.ok {
		return None[N]()
	}
	return Some(a.OrElse(0) - b.OrElse(0))
}

// Multiply returns a * b, treating an absent operand as 1.
// Absent only when both operands are absent.
func Multiply[N Number](a, b Option[N]) Option[N] {
	if !a.ok && !b.ok {
		return None[N]()
	}
	return Some(a.OrElse(1) * b.OrElse(1))
}

// Divide returns a / b, treating an absent operand as 1, so
// Divide(None, b) is 1/b. Absent only when both operands are absent.
//
// Division keeps the native semantics of N: integer division truncates
// toward zero and panics on a zero divisor, float division by zero yields
// ±Inf or NaN.
func Divide[N Number](a, b Option[N]) Option[N] {
	if !a.ok && !b.ok {
		return None[N]()
	}
	return Some(a.OrElse(1) / b.OrElse(1))
}

// Scale multiplies v by factor. An absent v stays absent whatever the factor;
// an absent factor counts as 1 and returns v unchanged, as does a factor of
// exactly 1.
//
// The product is computed in float64. Integer widths round it to the nearest
// integer with halves rounded away from zero (2.5 → 3, -2.5 → -3). The
// rounded product saturates at the 64-bit bounds of the signedness of N
// (NaN becomes 0) and is then narrowed to N, so int64 and uint64 clamp while
// narrower widths wrap like any other narrowing conversion.
func Scale[N Number](v Option[N], factor Option[float64]) Option[N] {
	return Apply(v, factor, scaleNumber[N])
}

func scaleNumber[N Number](v N, factor float64) N {
	if factor == 1 {
		return v
	}
	x := float64(v) * factor
	if isIntegral[N]() {
		return roundToIntegral[N](x)
	}
	return N(x)
}

// roundToIntegral rounds x half away from zero and converts it to the
// integer type N through a saturated int64 or uint64.
func roundToIntegral[N Number](x float64) N {
	x = math.Round(x)

	var zero N
	if zero-1 > zero {
		var top uint64 = math.MaxUint64
		switch {
		case !(x > 0):
			return 0
		case x >= 0x1p64:
			return N(top)
		}
		return N(uint64(x))
	}

	var (
		top    int64 = math.MaxInt64
		bottom int64 = math.MinInt64
	)
	switch {
	case math.IsNaN(x):
		return 0
	case x >= 0x1p63:
		return N(top)
	case x <= -0x1p63:
		return N(bottom)
	}
	return N(int64(x))
}
