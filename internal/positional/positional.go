// Package positional validates command words against the ordered list of
// positional argument descriptors compiled for a command.
package positional

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeflective/commander/internal/errors"
	"github.com/reeflective/commander/internal/parser"
)

// Args holds the positional argument slots of a single command, along
// with the precomputed requirements needed to validate a word list.
type Args struct {
	slots    []*parser.Argument
	variadic bool
}

// New builds an argument validator from an ordered list of descriptors.
func New(slots []*parser.Argument) *Args {
	args := &Args{slots: slots}

	for _, slot := range slots {
		if slot.Variadic {
			args.variadic = true
		}
	}

	return args
}

// Slots returns the positional argument descriptors, in order.
func (args *Args) Slots() []*parser.Argument {
	return args.slots
}

// HasVariadic reports whether any slot absorbs an unbounded word tail.
func (args *Args) HasVariadic() bool {
	return args.variadic
}

// Validate checks a list of command words against the argument slots:
// each slot consumes one word in order, a variadic slot consumes the
// remaining tail, and required slots left without a word make the whole
// list invalid. Excess words are rejected unless a variadic slot exists.
func (args *Args) Validate(words []string) error {
	if missing := args.missingNames(words); len(missing) > 0 {
		return requiredError(missing)
	}

	if len(words) > len(args.slots) && !args.variadic {
		return fmt.Errorf("too many arguments: expected at most %d, got %d",
			len(args.slots), len(words))
	}

	return nil
}

// ToCobraArgs converts the argument slots into a cobra.PositionalArgs function.
func (args *Args) ToCobraArgs() cobra.PositionalArgs {
	return func(_ *cobra.Command, words []string) error {
		return args.Validate(words)
	}
}

// missingNames returns the names of required slots for which
// no command word is available, in declaration order.
func (args *Args) missingNames(words []string) (missing []string) {
	for idx, slot := range args.slots {
		if idx < len(words) {
			continue
		}

		if slot.Required {
			missing = append(missing, "`"+slot.Name+"`")
		}
	}

	return missing
}

// requiredError makes a correct sentence for one or more missing arguments.
func requiredError(missing []string) error {
	if len(missing) == 1 {
		return fmt.Errorf("%w: %s was not provided", errors.ErrRequired, missing[0])
	}

	return fmt.Errorf("%w: %s and %s were not provided", errors.ErrRequired,
		strings.Join(missing[:len(missing)-1], ", "), missing[len(missing)-1])
}
