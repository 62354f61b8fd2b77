package goargs

import "errors"

var (
	// ErrHelp is returned by Parse after help text has been written, either
	// because a help token was present or because the argument vector was
	// empty while auto-help is enabled. It is a distinguished outcome, not a
	// failure; the outermost caller decides whether to exit.
	ErrHelp = errors.New("help requested")

	// ErrConfig indicates a structural problem with the registered
	// arguments, such as a duplicate name or an invalid alias. It is raised
	// when the lookup is built and is never recoverable.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates a syntax or resolution error in the argument
	// vector: an unrecognized token, a missing value, or a missing required
	// argument.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a resolved value failed type conversion or a
	// constraint check.
	ErrValidation = errors.New("validation error")
)
