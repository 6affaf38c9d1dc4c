package nullops

// Signed is any signed integer width.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer width.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer width.
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point width.
type Float interface {
	~float32 | ~float64
}

// Number is anything from [Integer], or a [Float].
//
// Operators constrained by Number take both operands with the same type
// argument, so widths never mix and no promotion happens.
type Number interface {
	Integer | Float
}

// isIntegral reports whether N truncates fractions.
func isIntegral[N Number]() bool {
	half := 0.5
	return N(half) == 0
}
