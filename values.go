package goargs

import (
	"fmt"

	"github.com/specialistvlad/goargs/internal/value"
)

// Values is the immutable result of a successful parse: exactly one typed
// entry per registered argument. Queries accept canonical or aliased names,
// with leading dash markers tolerated, and fail loudly when the name is
// unknown or the stored type differs from the requested one.
type Values struct {
	vals  map[string]value.Value
	names map[string]string // canonical names and aliases -> canonical name
}

func (vs *Values) lookup(name string) (value.Value, error) {
	canonical, ok := vs.names[normalizeName(name)]
	if !ok {
		return value.Value{}, fmt.Errorf("unknown argument %q", name)
	}
	return vs.vals[canonical], nil
}

// GetInt returns the integer value stored for the named argument.
func (vs *Values) GetInt(name string) (int, error) {
	v, err := vs.lookup(name)
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt()
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return n, nil
}

// GetFloat returns the float value stored for the named argument.
func (vs *Values) GetFloat(name string) (float64, error) {
	v, err := vs.lookup(name)
	if err != nil {
		return 0, err
	}
	f, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return f, nil
}

// GetString returns the string value stored for the named argument.
func (vs *Values) GetString(name string) (string, error) {
	v, err := vs.lookup(name)
	if err != nil {
		return "", err
	}
	s, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("argument %q: %w", name, err)
	}
	return s, nil
}

// GetBool returns the boolean value stored for the named argument.
func (vs *Values) GetBool(name string) (bool, error) {
	v, err := vs.lookup(name)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, fmt.Errorf("argument %q: %w", name, err)
	}
	return b, nil
}
