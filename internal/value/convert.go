package value

import (
	"fmt"
	"strconv"
)

// Convert coerces a raw string into a Value of the given kind.
//
// Int and Float require the whole string to parse. Bool is true iff the
// string is exactly "true" or "1"; any other string coerces to false without
// error. String is the identity.
func Convert(raw string, k Kind) (Value, error) {
	switch k {
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer value %q", raw)
		}
		return IntVal(n), nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid float value %q", raw)
		}
		return FloatVal(f), nil
	case Bool:
		return BoolVal(raw == "true" || raw == "1"), nil
	default:
		return StringVal(raw), nil
	}
}

// Infer converts a raw string without a declared kind. It tries, in order,
// a boolean literal, a whole-string integer parse, a whole-string float
// parse, and finally falls back to the literal string.
func Infer(raw string) Value {
	switch raw {
	case "true", "false", "1", "0":
		return BoolVal(raw == "true" || raw == "1")
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return IntVal(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatVal(f)
	}
	return StringVal(raw)
}
