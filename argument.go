package goargs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/goargs/internal/value"
)

// Type enumerates the declared types an argument's value can take. AutoType
// defers the decision to inference over the raw string at parse time.
type Type int

const (
	AutoType Type = iota
	IntType
	FloatType
	StringType
	BoolType
)

// Argument describes one named option. It is built once through chained
// configuration calls at startup and is immutable during parsing; the
// owning Parser holds it exclusively.
type Argument struct {
	name     string
	aliases  []string
	help     string
	required bool
	isFlag   bool
	typ      Type
	def      value.Value
	min      *int
	max      *int
	envVar   string
	choices  []string

	validator    func(string) bool
	validatorMsg string

	// Builder misuse cannot be reported mid-chain; the first error is
	// latched here and surfaced when the Parser builds its lookup.
	buildErr error
}

func newArgument(name string) *Argument {
	return &Argument{
		name: normalizeName(name),
		def:  value.Zero(value.Int),
	}
}

// normalizeName strips a single leading "-" or a double leading "--".
func normalizeName(name string) string {
	if rest, ok := strings.CutPrefix(name, "--"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(name, "-"); ok {
		return rest
	}
	return name
}

func (a *Argument) fail(err error) {
	if a.buildErr == nil {
		a.buildErr = err
	}
}

// Name returns the canonical name, without leading dash markers.
func (a *Argument) Name() string {
	return a.name
}

// Help sets the description shown in generated help text.
func (a *Argument) Help(text string) *Argument {
	a.help = text
	return a
}

// Required marks the argument as mandatory: parsing fails unless a value is
// provided on the command line or through the environment fallback.
func (a *Argument) Required() *Argument {
	a.required = true
	return a
}

// AddAlias registers an alternate name for the argument. A single leading
// "-" or double leading "--" is stripped. An empty alias or one equal to the
// canonical name is rejected; collisions with other arguments are detected
// when the Parser builds its lookup.
func (a *Argument) AddAlias(alias string) *Argument {
	alias = normalizeName(alias)
	if alias == "" || alias == a.name {
		a.fail(fmt.Errorf("%w: invalid alias for --%s", ErrConfig, a.name))
		return a
	}
	a.aliases = append(a.aliases, alias)
	return a
}

// TypeInt declares the argument's value to be an integer.
func (a *Argument) TypeInt() *Argument {
	return a.setType(IntType, value.Int)
}

// TypeFloat declares the argument's value to be a float.
func (a *Argument) TypeFloat() *Argument {
	return a.setType(FloatType, value.Float)
}

// TypeString declares the argument's value to be a string.
func (a *Argument) TypeString() *Argument {
	return a.setType(StringType, value.String)
}

// TypeBool declares the argument's value to be a boolean.
func (a *Argument) TypeBool() *Argument {
	return a.setType(BoolType, value.Bool)
}

// setType fixes the declared type. A default whose kind already matches is
// preserved; a mismatched default is reset to the type's zero value, never
// coerced, so a stale cross-typed default cannot leak through.
func (a *Argument) setType(t Type, k value.Kind) *Argument {
	a.typ = t
	if a.def.Kind() != k {
		a.def = value.Zero(k)
	}
	return a
}

// Flag marks the argument as a valueless boolean switch whose presence
// alone sets it true. Enabling forces the default to boolean false.
func (a *Argument) Flag(set bool) *Argument {
	a.isFlag = set
	if set {
		a.def = value.BoolVal(false)
	}
	return a
}

// DefaultInt sets an integer default.
func (a *Argument) DefaultInt(n int) *Argument {
	a.def = value.IntVal(n)
	return a
}

// DefaultFloat sets a float default.
func (a *Argument) DefaultFloat(f float64) *Argument {
	a.def = value.FloatVal(f)
	return a
}

// DefaultString sets a string default.
func (a *Argument) DefaultString(s string) *Argument {
	a.def = value.StringVal(s)
	return a
}

// DefaultBool sets a boolean default.
func (a *Argument) DefaultBool(b bool) *Argument {
	a.def = value.BoolVal(b)
	return a
}

// MinValue sets the lower bound for an integer-typed argument. Bounds are
// only enforced when the declared type is IntType.
func (a *Argument) MinValue(n int) *Argument {
	a.min = &n
	return a
}

// MaxValue sets the upper bound for an integer-typed argument.
func (a *Argument) MaxValue(n int) *Argument {
	a.max = &n
	return a
}

// Env names a process environment variable consulted when no command-line
// value was provided for the argument.
func (a *Argument) Env(varName string) *Argument {
	a.envVar = varName
	return a
}

// Choices restricts acceptable raw values to the given literals. The raw
// string is compared before any numeric conversion. Integer-typed arguments
// never have their choice set consulted; bounds and choice sets are
// alternative constraint families.
func (a *Argument) Choices(options ...string) *Argument {
	a.choices = options
	return a
}

// CustomValidation adds a predicate over the raw string, run after all
// built-in checks. On rejection the given message is reported, or
// "Validation failed." when empty.
func (a *Argument) CustomValidation(fn func(string) bool, message string) *Argument {
	a.validator = fn
	a.validatorMsg = message
	return a
}

// validate applies the built-in constraint checks, then any custom
// validator, to a candidate raw string.
func (a *Argument) validate(raw string) error {
	if a.typ == IntType {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: invalid integer value %q for --%s", ErrValidation, raw, a.name)
		}
		if a.min != nil && n < *a.min {
			return fmt.Errorf("%w: value %d for --%s is below the minimum %d", ErrValidation, n, a.name, *a.min)
		}
		if a.max != nil && n > *a.max {
			return fmt.Errorf("%w: value %d for --%s is above the maximum %d", ErrValidation, n, a.name, *a.max)
		}
	} else if len(a.choices) != 0 {
		if !slices.Contains(a.choices, raw) {
			return fmt.Errorf("%w: invalid choice %q for --%s (options: %s)",
				ErrValidation, raw, a.name, strings.Join(a.choices, ", "))
		}
	}
	if a.validator != nil && !a.validator(raw) {
		msg := a.validatorMsg
		if msg == "" {
			msg = "Validation failed."
		}
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	return nil
}
