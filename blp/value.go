package blp

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Value is the scalar payload of a leaf element. The vendor delivers a
// handful of wire types; NewValue normalizes them so that accessors behave
// the same regardless of which integer or float width the binding produced.
type Value struct {
	v interface{}
}

// NewValue wraps a raw scalar. Integers are widened to int64, floats to
// float64 and time.Time is truncated to a civil.Date. Unknown types are kept
// as-is and only reachable through Any.
func NewValue(v interface{}) Value {
	switch x := v.(type) {
	case int:
		return Value{int64(x)}
	case int32:
		return Value{int64(x)}
	case float32:
		return Value{float64(x)}
	case time.Time:
		return Value{civil.DateOf(x)}
	default:
		return Value{v}
	}
}

// IsNil reports whether the value carries no payload.
func (v Value) IsNil() bool {
	return v.v == nil
}

// Any returns the normalized raw payload.
func (v Value) Any() interface{} {
	return v.v
}

// AsString returns the payload as a string. The second return value is false
// if the payload is not a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// Float64 returns the payload as a float64, converting integer and decimal
// payloads. The second return value is false if the payload is not numeric.
func (v Value) Float64() (float64, bool) {
	switch x := v.v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case decimal.Decimal:
		f, _ := x.Float64()
		return f, true
	}
	return 0, false
}

// Int64 returns the payload as an int64. The second return value is false if
// the payload is not an integer.
func (v Value) Int64() (int64, bool) {
	i, ok := v.v.(int64)
	return i, ok
}

// Bool returns the payload as a bool. The second return value is false if
// the payload is not a bool.
func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// Decimal returns the payload as an exact decimal, converting integer and
// float payloads. The second return value is false if the payload is not
// numeric.
func (v Value) Decimal() (decimal.Decimal, bool) {
	switch x := v.v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		return decimal.NewFromFloat(x), true
	case int64:
		return decimal.NewFromInt(x), true
	}
	return decimal.Decimal{}, false
}

// Date returns the payload as a civil date. The second return value is false
// if the payload is not a date.
func (v Value) Date() (civil.Date, bool) {
	d, ok := v.v.(civil.Date)
	return d, ok
}

func (v Value) String() string {
	if v.v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.v)
}
