package goargs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/goargs/internal/ctxlog"
)

// LookupEnv is the environment-lookup capability consulted for env
// fallbacks. It reports the variable's value and whether it was set.
type LookupEnv func(name string) (string, bool)

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithAutoHelp toggles help interception. When enabled (the default), an
// empty argument vector or any "--help"/"-h" token makes Parse write help
// text and return ErrHelp instead of a value table.
func WithAutoHelp(enable bool) Option {
	return func(p *Parser) { p.autoHelp = enable }
}

// WithEnvLookup substitutes the environment lookup used for env fallbacks.
// Defaults to os.LookupEnv; tests substitute a fake to avoid depending on
// real process state.
func WithEnvLookup(fn LookupEnv) Option {
	return func(p *Parser) { p.lookupEnv = fn }
}

// WithOutput sets the writer generated help text is printed to. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.out = w }
}

// Parser owns an ordered collection of argument specs and converts raw
// argument vectors into typed value tables. Registration order controls
// help-text ordering and resolution order.
type Parser struct {
	progName  string
	autoHelp  bool
	lookupEnv LookupEnv
	out       io.Writer

	args  []*Argument
	index map[string]int // canonical names and aliases -> args index
}

// New creates a Parser for the named program.
func New(progName string, opts ...Option) *Parser {
	p := &Parser{
		progName:  progName,
		autoHelp:  true,
		lookupEnv: os.LookupEnv,
		out:       os.Stdout,
		index:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddArgument appends a new argument spec with the given canonical name
// (leading dash markers stripped) and returns it for chained configuration.
// Collisions with existing names are not checked until the lookup is built
// at the start of the next Parse.
func (p *Parser) AddArgument(name string) *Argument {
	a := newArgument(name)
	p.args = append(p.args, a)
	return a
}

// buildLookup clears and repopulates the name index from canonical names
// and aliases in registration order. It is idempotent and always reflects
// the current argument list; the first repeat of any name fails fast.
func (p *Parser) buildLookup() error {
	clear(p.index)
	for i, a := range p.args {
		if a.buildErr != nil {
			return a.buildErr
		}
		if _, dup := p.index[a.name]; dup {
			return fmt.Errorf("%w: duplicate alias: -%s", ErrConfig, a.name)
		}
		p.index[a.name] = i
		for _, alias := range a.aliases {
			if _, dup := p.index[alias]; dup {
				return fmt.Errorf("%w: duplicate alias: -%s", ErrConfig, alias)
			}
			p.index[alias] = i
		}
	}
	return nil
}

// Parse converts an argument vector into a typed value table. Element 0 is
// conventionally the program invocation and is skipped.
//
// On success every registered argument has exactly one entry in the
// returned Values. Errors satisfy errors.Is against ErrConfig, ErrParse or
// ErrValidation; the ErrHelp outcome is returned after help text has been
// written when auto-help intercepts.
//
// Value tokens that begin with "-" (negative numbers included) are never
// consumed as values under the lookahead rule; this is a documented
// limitation of the scan, not a defect.
func (p *Parser) Parse(ctx context.Context, argv []string) (*Values, error) {
	if err := p.buildLookup(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)

	if p.autoHelp {
		if len(argv) <= 1 {
			fmt.Fprint(p.out, p.Help())
			return nil, ErrHelp
		}
		for _, tok := range argv[1:] {
			if tok == "--help" || tok == "-h" {
				fmt.Fprint(p.out, p.Help())
				return nil, ErrHelp
			}
		}
	}

	provided, err := p.tokenize(logger, argv)
	if err != nil {
		return nil, err
	}
	return p.resolve(logger, provided)
}
