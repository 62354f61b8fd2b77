package goargs

import (
	"fmt"
	"log/slog"
	"strings"
)

// tokenize walks the argument vector left to right and maps canonical names
// to raw value strings. A "--" prefix introduces a long candidate name and
// a single "-" a short one; bare tokens are never captured as names and are
// ignored unless consumed as the value of a preceding option. A later
// occurrence of an option overwrites an earlier one.
func (p *Parser) tokenize(logger *slog.Logger, argv []string) (map[string]string, error) {
	provided := make(map[string]string)
	if len(argv) == 0 {
		return provided, nil
	}

	rest := argv[1:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]

		var name string
		switch {
		case strings.HasPrefix(tok, "--"):
			name = tok[2:]
		case strings.HasPrefix(tok, "-"):
			name = tok[1:]
		default:
			logger.Debug("Skipping bare token.", "token", tok)
			continue
		}

		idx, known := p.index[name]
		if !known {
			return nil, fmt.Errorf("%w: unrecognized argument: %s", ErrParse, tok)
		}
		arg := p.args[idx]

		// Lookahead: a following token is the value unless it starts with a
		// dash. Flags legitimately take no value here; they resolve to
		// boolean true later, so the empty string is recorded as a sentinel.
		raw := ""
		if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			raw = rest[i+1]
			i++
		} else if !arg.isFlag {
			return nil, fmt.Errorf("%w: missing value for %s", ErrParse, tok)
		}

		logger.Debug("Captured option token.", "option", arg.name, "value", raw)
		provided[arg.name] = raw
	}
	return provided, nil
}
