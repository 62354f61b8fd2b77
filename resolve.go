package goargs

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/goargs/internal/value"
)

// resolve determines the final value of every registered argument, in
// registration order: explicitly provided value, then environment fallback,
// then declared default. Required arguments with no candidate fail.
// Defaults are trusted to already be correctly typed and skip validation
// and conversion.
func (p *Parser) resolve(logger *slog.Logger, provided map[string]string) (*Values, error) {
	vals := make(map[string]value.Value, len(p.args))

	for _, a := range p.args {
		if raw, ok := provided[a.name]; ok {
			// Presence alone sets a flag; its empty sentinel is not a value.
			if a.isFlag {
				vals[a.name] = value.BoolVal(true)
				continue
			}
			v, err := p.convert(a, raw)
			if err != nil {
				return nil, err
			}
			vals[a.name] = v
			continue
		}

		if a.envVar != "" {
			if raw, found := p.lookupEnv(a.envVar); found {
				logger.Debug("Environment fallback found.", "option", a.name, "var", a.envVar)
				v, err := p.convert(a, raw)
				if err != nil {
					return nil, err
				}
				vals[a.name] = v
				continue
			}
			logger.Debug("Environment fallback not set.", "option", a.name, "var", a.envVar)
		}

		if a.required {
			return nil, fmt.Errorf("%w: missing required argument: --%s", ErrParse, a.name)
		}
		vals[a.name] = a.def
	}

	names := make(map[string]string, len(p.index))
	for n, i := range p.index {
		names[n] = p.args[i].name
	}
	return &Values{vals: vals, names: names}, nil
}

// convert validates a candidate raw string and coerces it to the argument's
// declared type. Validation errors propagate verbatim.
func (p *Parser) convert(a *Argument, raw string) (value.Value, error) {
	if err := a.validate(raw); err != nil {
		return value.Value{}, err
	}
	if a.typ == AutoType {
		return value.Infer(raw), nil
	}
	v, err := value.Convert(raw, kindOf(a.typ))
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v for --%s", ErrValidation, err, a.name)
	}
	return v, nil
}

// kindOf maps a fixed declared type to its value kind. AutoType has no
// fixed kind and is handled by inference before this is reached.
func kindOf(t Type) value.Kind {
	switch t {
	case IntType:
		return value.Int
	case FloatType:
		return value.Float
	case BoolType:
		return value.Bool
	default:
		return value.String
	}
}
