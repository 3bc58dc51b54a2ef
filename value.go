package sentinel

import (
	"cmp"
	"fmt"
	"math"
)

// Value is an ordered payload a sentinel can delegate comparison to. Values
// are constructed with Tuple or Int and attached via Opts.Value; they give a
// sentinel the ordering behavior of an existing data shape while leaving its
// identity untouched.
type Value interface {
	// Compare orders this value against another, returning a negative
	// number, zero, or a positive number as in the cmp package. Values of
	// incompatible shapes (e.g. a tuple against an integer) return an error
	// matching ErrNotOrdered.
	Compare(other Value) (int, error)

	// Interface returns the payload's contents as a plain Go value: a
	// []any for tuples, or the scalar itself.
	Interface() any
}

// Tuple constructs a tuple-shaped Value ordered element-wise with standard
// tuple rules: the first unequal element pair decides, and a tuple that's a
// strict prefix of another sorts first. Elements may be nil, booleans,
// integers, floats, strings, nested []any tuples, other Values, or sentinels
// that themselves carry a payload. An element outside those shapes fails
// construction.
func Tuple(elems ...any) (Value, error) {
	normalized := make([]any, len(elems))
	for i, elem := range elems {
		norm, err := normalizeElem(elem)
		if err != nil {
			return nil, fmt.Errorf("tuple element %d: %w", i, err)
		}
		normalized[i] = norm
	}
	return &tupleValue{elems: normalized}, nil
}

// MustTuple is a version of Tuple that panics on invalid elements, suitable
// for package-level sentinel construction.
func MustTuple(elems ...any) Value {
	value, err := Tuple(elems...)
	if err != nil {
		panic(err)
	}
	return value
}

// Int constructs an integer-shaped Value ordered with standard integer
// rules.
func Int(n int64) Value {
	return &scalarValue{v: n}
}

type tupleValue struct {
	elems []any
}

func (v *tupleValue) Compare(other Value) (int, error) {
	otherTuple, ok := other.(*tupleValue)
	if !ok {
		return 0, fmt.Errorf("%w: cannot order tuple against %T", ErrNotOrdered, other)
	}
	return compareTuples(v.elems, otherTuple.elems)
}

func (v *tupleValue) Interface() any {
	elems := make([]any, len(v.elems))
	copy(elems, v.elems)
	return elems
}

type scalarValue struct {
	v any
}

func (v *scalarValue) Compare(other Value) (int, error) {
	otherScalar, ok := other.(*scalarValue)
	if !ok {
		return 0, fmt.Errorf("%w: cannot order %T against %T", ErrNotOrdered, v.v, other)
	}
	return compareNormalized(v.v, otherScalar.v)
}

func (v *scalarValue) Interface() any { return v.v }

// normalizeElem maps a payload element to its canonical comparison shape:
// nil, bool, int64, float64, string, or *tupleValue. Normalizing once at
// construction keeps comparison free of per-kind switches over the full
// zoo of Go numeric types.
func normalizeElem(elem any) (any, error) {
	switch elem := elem.(type) {
	case nil:
		return nil, nil
	case bool:
		return elem, nil
	case int:
		return int64(elem), nil
	case int8:
		return int64(elem), nil
	case int16:
		return int64(elem), nil
	case int32:
		return int64(elem), nil
	case int64:
		return elem, nil
	case uint:
		return int64(elem), nil
	case uint8:
		return int64(elem), nil
	case uint16:
		return int64(elem), nil
	case uint32:
		return int64(elem), nil
	case uint64:
		if elem > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows ordered integer range", ErrNotOrdered, elem)
		}
		return int64(elem), nil
	case float32:
		return float64(elem), nil
	case float64:
		return elem, nil
	case string:
		return elem, nil
	case []any:
		nested, err := Tuple(elem...)
		if err != nil {
			return nil, err
		}
		return nested.(*tupleValue), nil
	case *tupleValue:
		return elem, nil
	case *scalarValue:
		return elem.v, nil
	case *Sentinel:
		if elem == nil || elem.value == nil {
			return nil, fmt.Errorf("%w: sentinel %v carries no ordered payload", ErrNotOrdered, elem)
		}
		switch value := elem.value.(type) {
		case *tupleValue:
			return value, nil
		case *scalarValue:
			return value.v, nil
		default:
			return nil, fmt.Errorf("%w: sentinel %v carries unorderable payload %T", ErrNotOrdered, elem, elem.value)
		}
	default:
		return nil, fmt.Errorf("%w: %T is not an orderable element", ErrNotOrdered, elem)
	}
}

// compareNormalized orders two canonical elements. nil sorts before
// everything; integers and floats order numerically against each other;
// otherwise the shapes must match exactly.
func compareNormalized(a, b any) (int, error) {
	if a == nil && b == nil {
		return 0, nil
	}
	if a == nil {
		return -1, nil
	}
	if b == nil {
		return 1, nil
	}

	switch a := a.(type) {
	case bool:
		if b, ok := b.(bool); ok {
			return boolToInt(a) - boolToInt(b), nil
		}
	case int64:
		switch b := b.(type) {
		case int64:
			return cmp.Compare(a, b), nil
		case float64:
			return cmp.Compare(float64(a), b), nil
		}
	case float64:
		switch b := b.(type) {
		case int64:
			return cmp.Compare(a, float64(b)), nil
		case float64:
			return cmp.Compare(a, b), nil
		}
	case string:
		if b, ok := b.(string); ok {
			return cmp.Compare(a, b), nil
		}
	case *tupleValue:
		if b, ok := b.(*tupleValue); ok {
			return compareTuples(a.elems, b.elems)
		}
	}

	return 0, fmt.Errorf("%w: cannot order %T against %T", ErrNotOrdered, a, b)
}

func compareTuples(a, b []any) (int, error) {
	for i := range min(len(a), len(b)) {
		order, err := compareNormalized(a[i], b[i])
		if err != nil {
			return 0, fmt.Errorf("tuple element %d: %w", i, err)
		}
		if order != 0 {
			return order, nil
		}
	}
	return cmp.Compare(len(a), len(b)), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
