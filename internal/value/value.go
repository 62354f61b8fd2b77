package value

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Kind identifies which member of the union a Value holds.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Bool
)

// String returns the kind's friendly name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one tagged member of the union. The zero Value is not meaningful;
// use the constructors or Zero.
type Value struct {
	kind Kind
	v    cty.Value
}

// IntVal wraps an int.
func IntVal(n int) Value {
	return Value{kind: Int, v: cty.NumberIntVal(int64(n))}
}

// FloatVal wraps a float64.
func FloatVal(f float64) Value {
	return Value{kind: Float, v: cty.NumberFloatVal(f)}
}

// StringVal wraps a string.
func StringVal(s string) Value {
	return Value{kind: String, v: cty.StringVal(s)}
}

// BoolVal wraps a bool.
func BoolVal(b bool) Value {
	return Value{kind: Bool, v: cty.BoolVal(b)}
}

// Zero returns the zero value of the given kind: 0, 0.0, "" or false.
func Zero(k Kind) Value {
	switch k {
	case Int:
		return IntVal(0)
	case Float:
		return FloatVal(0)
	case Bool:
		return BoolVal(false)
	default:
		return StringVal("")
	}
}

// Kind reports which member the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt unwraps an Int value.
func (v Value) AsInt() (int, error) {
	if v.kind != Int {
		return 0, v.mismatch(Int)
	}
	var n int
	if err := gocty.FromCtyValue(v.v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// AsFloat unwraps a Float value.
func (v Value) AsFloat() (float64, error) {
	if v.kind != Float {
		return 0, v.mismatch(Float)
	}
	var f float64
	if err := gocty.FromCtyValue(v.v, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// AsString unwraps a String value.
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", v.mismatch(String)
	}
	var s string
	if err := gocty.FromCtyValue(v.v, &s); err != nil {
		return "", err
	}
	return s, nil
}

// AsBool unwraps a Bool value.
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, v.mismatch(Bool)
	}
	var b bool
	if err := gocty.FromCtyValue(v.v, &b); err != nil {
		return false, err
	}
	return b, nil
}

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("value holds %s, not %s", v.kind, want)
}

// Render formats the payload per its kind, for help text and round-trips
// through Convert.
func (v Value) Render() string {
	switch v.kind {
	case Int:
		n, err := v.AsInt()
		if err != nil {
			return ""
		}
		return strconv.Itoa(n)
	case Float:
		f, err := v.AsFloat()
		if err != nil {
			return ""
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case Bool:
		b, err := v.AsBool()
		if err != nil {
			return ""
		}
		return strconv.FormatBool(b)
	default:
		s, err := v.AsString()
		if err != nil {
			return ""
		}
		return s
	}
}
