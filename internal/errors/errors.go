package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrNilCommand indicates that a nil command was given where a
	// non-nil one is required.
	ErrNilCommand = errors.New("command cannot be nil")

	// ErrInvalidChoice indicates that a flag value is not among the
	// choices declared for its option.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrRequired signals a positional argument slot has not been
	// given its minimum amount of command words.
	ErrRequired = errors.New("required argument")

	// ErrUnknownSubcommand indicates that the invoked subcommand has not been found.
	ErrUnknownSubcommand = errors.New("unknown subcommand")
)
