package nullops

import (
	"fmt"
	"reflect"
	"strings"
)

// Capability names one of the single-method contracts a type may implement.
type Capability string

const (
	CapAddable      Capability = "Addable"
	CapSubtractable Capability = "Subtractable"
	CapMultipliable Capability = "Multipliable"
	CapDividable    Capability = "Dividable"
	CapScalable     Capability = "Scalable"
)

// AllCapabilities lists every capability in a stable order.
var AllCapabilities = []Capability{
	CapAddable,
	CapSubtractable,
	CapMultipliable,
	CapDividable,
	CapScalable,
}

// Method returns the name of the method backing the capability.
func (c Capability) Method() string {
	switch c {
	case CapAddable:
		return "Add"
	case CapSubtractable:
		return "Subtract"
	case CapMultipliable:
		return "Multiply"
	case CapDividable:
		return "Divide"
	case CapScalable:
		return "Scale"
	}
	return ""
}

var float64Type = reflect.TypeOf(float64(0))

// CapabilityError reports a value that lacks required capabilities.
type CapabilityError struct {
	// TypeName is the dynamic type of the inspected value.
	TypeName string

	// Missing lists the required capabilities the type does not implement.
	Missing []Capability
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = string(c)
	}
	return fmt.Sprintf("type %s is missing capabilities: %s", e.TypeName, strings.Join(names, ", "))
}

// CapabilitiesOf reports which capabilities the dynamic type of v implements.
//
// A method only counts when its signature is self-typed: Add(T) T for the
// binary capabilities and Scale(float64) T for scaling, where T is exactly the
// dynamic type of v. This is the runtime counterpart of the generic
// constraints and uses reflection; keep it at boundaries, not in folds.
func CapabilitiesOf(v any) []Capability {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}

	var caps []Capability
	for _, c := range AllCapabilities {
		if implements(t, c) {
			caps = append(caps, c)
		}
	}
	return caps
}

// RequireCapabilities returns a *CapabilityError if v does not implement
// every capability in required.
func RequireCapabilities(v any, required ...Capability) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return &CapabilityError{TypeName: "nil", Missing: required}
	}

	var missing []Capability
	for _, c := range required {
		if !implements(t, c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &CapabilityError{TypeName: t.String(), Missing: missing}
	}
	return nil
}

// CombineAny applies a binary capability to two untyped values with the
// pass-through rule of Combine: a nil operand, or a typed nil pointer, map or
// slice, yields the other one unchanged.
//
// Both operands must share a dynamic type implementing c. CapScalable is not
// binary and is rejected.
func CombineAny(c Capability, a, b any) (any, error) {
	if c == CapScalable {
		return nil, fmt.Errorf("capability %s is not a binary operation", c)
	}
	switch {
	case isAbsent(a):
		return b, nil
	case isAbsent(b):
		return a, nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return nil, fmt.Errorf("type mismatch: %s != %s", ta, tb)
	}
	if err := RequireCapabilities(a, c); err != nil {
		return nil, err
	}

	out := reflect.ValueOf(a).MethodByName(c.Method()).Call([]reflect.Value{reflect.ValueOf(b)})
	return out[0].Interface(), nil
}

// isAbsent reports whether v is nil or a nil pointer, map or slice.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// implements checks the self-typed method signature for c on t.
func implements(t reflect.Type, c Capability) bool {
	m, ok := t.MethodByName(c.Method())
	if !ok {
		return false
	}

	// Method types from a reflect.Type include the receiver as In(0).
	mt := m.Type
	if mt.NumIn() != 2 || mt.NumOut() != 1 || mt.Out(0) != t {
		return false
	}
	if c == CapScalable {
		return mt.In(1) == float64Type
	}
	return mt.In(1) == t
}
