// Package nullops provides arithmetic over values that may be absent.
//
// # Overview
//
// Every operator takes optional operands ([Option]) and decides what an
// absent operand means. There are two policies, and the difference between
// them is the whole point of the package:
//
//   - Numbers use identity substitution. A missing operand is replaced by the
//     identity element of the operation (0 for + and -, 1 for * and /).
//   - Composite types use pass-through. A missing operand makes the operator
//     return the other operand unchanged, because an arbitrary type has no
//     identity element the package could invent.
//
// In both cases two absent operands give an absent result.
//
// # Numbers
//
// [Add], [Subtract], [Multiply], [Divide] and [Scale] work on any [Number]:
//
//	nullops.Multiply(nullops.Some(3), nullops.Some(4))  // Some(12)
//	nullops.Multiply(nullops.None[int](), nullops.Some(4)) // Some(4)
//	nullops.Subtract(nullops.None[int](), nullops.Some(2)) // Some(-2)
//	nullops.Add(nullops.None[int](), nullops.None[int]())  // None
//
// Both operands share one type argument, so widths never mix. Arithmetic is
// native to that width: int16 wraps at int16, integer division truncates
// toward zero and panics on a zero divisor, float division by zero yields
// ±Inf or NaN. Nothing is caught or translated.
//
// Scale multiplies by an optional float64 factor. An absent value stays
// absent; an absent factor is a no-op. Integer widths round the product half
// away from zero:
//
//	nullops.Scale(nullops.Some(3), nullops.Some(1.5))   // Some(5)
//	nullops.Scale(nullops.Some(-5), nullops.Some(0.5))  // Some(-3)
//
// # Capabilities
//
// Composite types join in by implementing any subset of the single-method
// contracts [Addable], [Subtractable], [Multipliable], [Dividable] and
// [Scalable]:
//
//	type Totals struct{ Pages nullops.Option[int] }
//
//	func (t Totals) Add(o Totals) Totals {
//	    return Totals{Pages: nullops.Add(t.Pages, o.Pages)}
//	}
//
//	week := nullops.AddValues(monday, tuesday)
//
// [AddValues] and friends call a.Add(b) only when both sides are present.
// Whatever the method returns is the result: the package never looks inside
// T. Implementations may allocate or mutate their receiver and return it;
// callers must not rely on either, and sharing one mutating instance across
// goroutines is the implementation's problem.
//
// # Combinators
//
// Both policies for composite types are built on two exported combinators,
// usable with any function:
//
//	nullops.Combine(a, b, f) // None+None → None, one side → that side, else f(a, b)
//	nullops.Apply(a, x, f)   // None a → None, None x → a, else f(a, x)
//
// [Map] converts a present value to another type and keeps absence absent.
//
// [Fold], [Sum], [Min] and [Max] cover the common reductions over a slice of
// optional values.
//
// # Testing
//
// The Assert helpers check the absence laws of any operator, including ones
// written by callers for their own types:
//
//	func TestTotals(t *testing.T) {
//	    nullops.AssertPassThrough(t, "AddValues", nullops.AddValues[Totals], samples, equalTotals)
//	    nullops.AssertScaleLaws(t, "ScaleValue", nullops.ScaleValue[Totals], samples, equalTotals)
//	}
//
// # See Also
//
//   - examples/readinglog - folds a week of reading records into averages
package nullops
