package nullops

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	calls := 0
	concat := func(x, y string) string {
		calls++
		return x + y
	}

	tests := []struct {
		name string
		a, b Option[string]
		want Option[string]
	}{
		{"both absent", None[string](), None[string](), None[string]()},
		{"left absent", None[string](), Some("b"), Some("b")},
		{"right absent", Some("a"), None[string](), Some("a")},
		{"both present", Some("a"), Some("b"), Some("ab")},
		{"empty is present", Some(""), Some("b"), Some("b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combine(tt.a, tt.b, concat))
		})
	}

	// f only runs for the two rows with both sides present.
	assert.Equal(t, 2, calls)
}

func TestApply(t *testing.T) {
	calls := 0
	repeat := func(s string, n int) string {
		calls++
		out := ""
		for i := 0; i < n; i++ {
			out += s
		}
		return out
	}

	assert.Equal(t, None[string](), Apply(None[string](), None[int](), repeat))
	assert.Equal(t, None[string](), Apply(None[string](), Some(3), repeat))
	assert.Equal(t, Some("ab"), Apply(Some("ab"), None[int](), repeat))
	assert.Equal(t, Some("ababab"), Apply(Some("ab"), Some(3), repeat))
	assert.Equal(t, 1, calls)
}

// TestCombine_Asymmetry pins the difference between the two combinators: an
// absent first argument still yields a value from Combine but never from Apply.
func TestCombine_Asymmetry(t *testing.T) {
	pick := func(x, y int) int { return y }
	label := func(x int, y int) int { return x }

	assert.Equal(t, Some(4), Combine(None[int](), Some(4), pick))
	assert.Equal(t, None[int](), Apply(None[int](), Some(4), label))
}

func TestApply_DifferentArgumentType(t *testing.T) {
	format := func(v int, base int) int {
		n, _ := strconv.Atoi(strconv.FormatInt(int64(v), base))
		return n
	}

	assert.Equal(t, Some(101), Apply(Some(5), Some(2), format))
	assert.Equal(t, Some(5), Apply(Some(5), None[int](), format))

	suffix := func(s string, sep rune) string { return s + string(sep) }
	assert.Equal(t, Some("a;"), Apply(Some("a"), Some(';'), suffix))
}

func TestMap(t *testing.T) {
	calls := 0
	itoa := func(x int) string {
		calls++
		return strconv.Itoa(x)
	}

	tests := []struct {
		name string
		in   Option[int]
		want Option[string]
	}{
		{"absent", None[int](), None[string]()},
		{"zero", Some(0), Some("0")},
		{"present", Some(-42), Some("-42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Map(tt.in, itoa))
		})
	}
	assert.Equal(t, 2, calls, "f runs only for present values")
}
