// Package commander provides a declarative way to describe the commands of
// a CLI application: their positional arguments, their flag options, and
// how runtime flag occurrences bind typed values onto each command.
//
// The primary workflow is to build a tree of commands with New and
// Command, declare their interfaces with Arguments and Option, and then
// hand the root to gen/flags.Generate() to obtain a fully configured
// *cobra.Command tree, with shell completions attached through
// gen/completions.
//
// Commands own their state: an ordered list of argument descriptors, an
// ordered list of option descriptors, a store of bound values keyed by
// camelCased option names, and a synchronous publish/subscribe registry
// through which the flag tokenizer reports flag occurrences.
package commander

import (
	"github.com/reeflective/commander/internal/errors"
	"github.com/reeflective/commander/internal/parser"
)

// Argument describes a single positional argument slot compiled from an
// argument specification string ("<source>", "[dest...]").
type Argument = parser.Argument

// Option describes a single flag option as parsed from its raw flags
// declaration string. Descriptors appear in the command's option list in
// declaration order, which matters for help rendering only.
type Option = parser.Option

// Handler is a binding handler subscribed to an option's event. The
// value is nil when the flag was present without an explicit value, and
// the raw string captured from the command line otherwise.
type Handler func(val *string)

// CoerceFunc converts a raw command-line value before it is bound. The
// prior argument is the current bound value when one exists, and the
// option's registration default otherwise. Value-less occurrences of
// the flag run the coercion with an empty value.
type CoerceFunc func(value string, prior any) any

// Validate is an option extra carrying a go-playground/validator tag to
// be run against each raw value of the option ("url", "ipv4", ...).
type Validate string

// Public errors, re-exported for callers matching with errors.Is.
var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.ErrParse

	// ErrInvalidChoice indicates that a flag value is not among the
	// choices declared for its option.
	ErrInvalidChoice = errors.ErrInvalidChoice

	// ErrRequired signals a positional argument slot has not been
	// given its minimum amount of command words.
	ErrRequired = errors.ErrRequired

	// ErrUnknownSubcommand indicates that the invoked subcommand has not been found.
	ErrUnknownSubcommand = errors.ErrUnknownSubcommand
)
