package nullops

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 0.001

// some and none keep the tables short.
func some[T any](v T) Option[T] { return Some(v) }
func none[T any]() Option[T]    { return None[T]() }

// binaryCase is one row of an operator table.
type binaryCase[N Number] struct {
	a, b, want Option[N]
}

// checkBinary runs op over a table, comparing floats within delta.
func checkBinary[N Number](t *testing.T, op BinaryOp[N], cases []binaryCase[N]) {
	t.Helper()

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v_%v", c.a, c.b), func(t *testing.T) {
			assertOptionNear(t, c.want, op(c.a, c.b))
		})
	}
}

func assertOptionNear[N Number](t *testing.T, want, got Option[N]) {
	t.Helper()

	w, wok := want.Get()
	g, gok := got.Get()
	if !assert.Equal(t, wok, gok, "presence of %v vs %v", want, got) || !wok {
		return
	}
	if isIntegral[N]() {
		assert.Equal(t, w, g)
		return
	}
	assert.InDelta(t, float64(w), float64(g), delta)
}

// record is a composite value implementing every capability. Like a typical
// data record it carries an identity field that the numeric operations leave
// alone, so results keep the left operand's key.
type record struct {
	Key   string
	Count Option[int]
	Value Option[float64]
}

func newRecord(key string, value float64) record {
	return record{Key: key, Value: Some(value)}
}

func (r record) Add(o record) record {
	return record{Key: r.Key, Count: Add(r.Count, o.Count), Value: Add(r.Value, o.Value)}
}

func (r record) Subtract(o record) record {
	return record{Key: r.Key, Count: Subtract(r.Count, o.Count), Value: Subtract(r.Value, o.Value)}
}

func (r record) Multiply(o record) record {
	return record{Key: r.Key, Count: Multiply(r.Count, o.Count), Value: Multiply(r.Value, o.Value)}
}

func (r record) Divide(o record) record {
	return record{Key: r.Key, Count: Divide(r.Count, o.Count), Value: Divide(r.Value, o.Value)}
}

func (r record) Scale(factor float64) record {
	return record{Key: r.Key, Count: Scale(r.Count, Some(factor)), Value: Scale(r.Value, Some(factor))}
}

// recordsEqual compares keys and counts exactly and values within delta.
func recordsEqual(x, y record) bool {
	if x.Key != y.Key || x.Count != y.Count {
		return false
	}
	xv, xok := x.Value.Get()
	yv, yok := y.Value.Get()
	if xok != yok {
		return false
	}
	return !xok || math.Abs(xv-yv) <= delta
}

// counter implements only Addable, through a pointer receiver that mutates
// and returns itself.
type counter struct {
	n     int
	calls int
}

func (c *counter) Add(o *counter) *counter {
	c.n += o.n
	c.calls++
	return c
}
