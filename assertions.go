package nullops

import (
	"math"
	"sync"
	"testing"
)

// BinaryOp is the shape shared by every binary operator in this package.
type BinaryOp[T any] func(a, b Option[T]) Option[T]

// ScaleOp is the shape shared by Scale and ScaleValue.
type ScaleOp[T any] func(v Option[T], factor Option[float64]) Option[T]

// LawConfig contains tolerances for the law assertions.
type LawConfig struct {
	// Relative tolerance for float comparisons (0 = exact)
	Tolerance float64

	// Goroutines used by AssertConcurrentSafe
	Workers int

	// Calls per goroutine in AssertConcurrentSafe
	Iterations int
}

// DefaultLawConfig returns conservative settings.
func DefaultLawConfig() LawConfig {
	return LawConfig{
		Tolerance:  1e-9, // float round-off only
		Workers:    8,
		Iterations: 1000,
	}
}

// AssertAbsentBoth verifies op(None, None) is None.
func AssertAbsentBoth[T any](t testing.TB, name string, op BinaryOp[T]) {
	t.Helper()

	if got := op(None[T](), None[T]()); got.IsSome() {
		t.Errorf("%s(null, null) = %v, want null", name, got)
	}
}

// AssertIdentitySubstitution verifies that an absent operand behaves exactly
// like identity on either side:
//
//	op(a, None) == op(a, identity)
//	op(None, b) == op(identity, b)
//
// Results are compared with ==, so samples must not contain NaN.
func AssertIdentitySubstitution[N Number](t testing.TB, name string, op BinaryOp[N], identity N, samples []N) {
	t.Helper()

	AssertAbsentBoth(t, name, op)

	for _, x := range samples {
		if got, want := op(Some(x), None[N]()), op(Some(x), Some(identity)); got != want {
			t.Errorf("%s(%v, null) = %v, want %v", name, x, got, want)
		}
		if got, want := op(None[N](), Some(x)), op(Some(identity), Some(x)); got != want {
			t.Errorf("%s(null, %v) = %v, want %v", name, x, got, want)
		}
	}
}

// AssertPassThrough verifies that a lone present operand comes back
// unchanged and that op is not consulted for it.
func AssertPassThrough[T any](t testing.TB, name string, op BinaryOp[T], samples []T, equal func(x, y T) bool) {
	t.Helper()

	AssertAbsentBoth(t, name, op)

	for _, x := range samples {
		if got := op(Some(x), None[T]()); !got.IsSome() || !equal(got.value, x) {
			t.Errorf("%s(%v, null) = %v, want %v unchanged", name, x, got, x)
		}
		if got := op(None[T](), Some(x)); !got.IsSome() || !equal(got.value, x) {
			t.Errorf("%s(null, %v) = %v, want %v unchanged", name, x, got, x)
		}
	}
}

// AssertScaleLaws verifies the absence rules of a scale operator:
//
//	scale(None, f)   == None
//	scale(v, None)   == v
//	scale(v, 1.0)    == v
func AssertScaleLaws[T any](t testing.TB, name string, scale ScaleOp[T], samples []T, equal func(x, y T) bool) {
	t.Helper()

	for _, f := range []Option[float64]{None[float64](), Some(0.0), Some(1.0), Some(-2.5)} {
		if got := scale(None[T](), f); got.IsSome() {
			t.Errorf("%s(null, %v) = %v, want null", name, f, got)
		}
	}

	for _, x := range samples {
		if got := scale(Some(x), None[float64]()); !got.IsSome() || !equal(got.value, x) {
			t.Errorf("%s(%v, null) = %v, want %v", name, x, got, x)
		}
		if got := scale(Some(x), Some(1.0)); !got.IsSome() || !equal(got.value, x) {
			t.Errorf("%s(%v, 1) = %v, want %v", name, x, got, x)
		}
	}
}

// AssertRoundTrip verifies Divide(Multiply(a, b), b) ≈ a for every pair with
// a non-zero b.
//
// Integer pairs whose product overflows N are skipped: the wrapped product
// cannot be divided back, and that loss is native behavior.
func AssertRoundTrip[N Number](t testing.TB, pairs [][2]N, cfg LawConfig) {
	t.Helper()

	for _, p := range pairs {
		a, b := p[0], p[1]
		if b == 0 {
			continue
		}
		if isIntegral[N]() && float64(a)*float64(b) != float64(a*b) {
			t.Logf("  skipping %v*%v: overflows", a, b)
			continue
		}

		got := Divide(Multiply(Some(a), Some(b)), Some(b)).MustGet()
		if !approxEqual(float64(got), float64(a), cfg.Tolerance) {
			t.Errorf("Divide(Multiply(%v, %v), %v) = %v, want ≈ %v", a, b, b, got, a)
		}
	}
}

// AssertConcurrentSafe calls op(a, b) from cfg.Workers goroutines and
// verifies every call agrees with a sequential call.
//
// Operators in this package hold no state, so this only fails when a
// capability implementation mutates shared operands.
func AssertConcurrentSafe[T any](t testing.TB, name string, op BinaryOp[T], a, b Option[T], equal func(x, y T) bool, cfg LawConfig) {
	t.Helper()

	want := op(a, b)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < cfg.Iterations; i++ {
				got := op(a, b)
				if got.IsSome() != want.IsSome() || (got.IsSome() && !equal(got.value, want.value)) {
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if failures > 0 {
		t.Errorf("%s: %d of %d concurrent calls disagreed with %v",
			name, failures, cfg.Workers*cfg.Iterations, want)
		return
	}
	t.Logf("✓ %s: %d concurrent calls agree", name, cfg.Workers*cfg.Iterations)
}

// approxEqual compares with a relative tolerance, falling back to an absolute
// one near zero.
func approxEqual(x, y, tol float64) bool {
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	scale := math.Max(math.Abs(x), math.Abs(y))
	if scale < 1 {
		return diff <= tol
	}
	return diff/scale <= tol
}
