package model

import (
	"math"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-propgen/internal/coerce"
)

// ValueKind tags the primitive held by a Value.
type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueBool
	ValueNumber
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueNumber:
		return "number"
	default:
		return "string"
	}
}

// Value is a typed property value: exactly one of a bool, a number or a
// string. Raw host values are parsed into a Value once and threaded through
// the pipeline from there. The zero Value is the empty string.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: ValueBool, b: b}
}

// NumberValue wraps a number.
func NumberValue(n float64) Value {
	return Value{kind: ValueNumber, n: n}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: ValueString, s: s}
}

// InferValue applies the boolean, then number, then string precedence.
func InferValue(s string) Value {
	switch {
	case coerce.IsBoolean(s):
		return BoolValue(coerce.AsBoolean(s))
	case coerce.IsNumber(s):
		return NumberValue(coerce.AsNumber(s))
	default:
		return StringValue(s)
	}
}

// Kind returns the primitive held by v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == ValueBool
}

// Number returns the number held by v.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == ValueNumber
}

// Text returns the string held by v, or the literal form of a bool or number.
func (v Value) Text() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "true"
		}
		return "false"
	case ValueNumber:
		return coerce.FormatNumber(v.n)
	default:
		return v.s
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}

// Equal compares kind and payload. A NaN number is never equal to anything.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueBool:
		return v.b == other.b
	case ValueNumber:
		return v.n == other.n
	default:
		return v.s == other.s
	}
}

// MarshalJSON encodes the bare scalar. NaN encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueBool:
		return coerce.EncodeJSON(v.b)
	case ValueNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return []byte("null"), nil
		}
		return coerce.EncodeJSON(v.n)
	default:
		return coerce.EncodeJSON(v.s)
	}
}

// UnmarshalJSON decodes a bare scalar.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch typed := raw.(type) {
	case bool:
		*v = BoolValue(typed)
	case float64:
		*v = NumberValue(typed)
	case nil:
		*v = NumberValue(math.NaN())
	default:
		*v = StringValue(coerce.Text(typed))
	}
	return nil
}
