// Package goargs implements a declarative command-line argument parser.
// Callers register named options — with aliases, types, defaults and
// constraints — on a Parser, and Parse converts a raw argument vector into
// a validated, typed value table.
//
// The final value of every option is resolved by precedence: explicitly
// provided command-line value, then environment-variable fallback, then
// declared default. Type coercion and constraint checks (integer bounds,
// choice sets, custom predicates) run on provided and environment-sourced
// values; defaults are trusted as already correctly typed.
//
// Parsing is a one-shot, synchronous operation. A Parser is not safe for
// concurrent Parse calls; use independent Parser instances instead.
package goargs
