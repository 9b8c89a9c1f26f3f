// Package completions attaches carapace shell completion to a cobra
// command tree generated from a commander command tree: choice lists
// declared on options become flag completions, and positional slots
// advertise their usage hints.
package completions

import (
	"fmt"
	"strings"

	comp "github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/internal/errors"
)

var errCommandNotFound = fmt.Errorf("%w: command not found", errors.ErrParse)

// Generate registers completions for the whole command tree onto the
// given cobra command (normally the output of gen/flags.Generate for the
// same tree). Returns the root carapace, so you can refine completions
// should you like.
func Generate(cmd *cobra.Command, data *commander.Command, comps *comp.Carapace) (*comp.Carapace, error) {
	if cmd == nil || data == nil {
		return nil, errors.ErrNilCommand
	}

	if comps == nil {
		comps = comp.Gen(cmd)
	}

	flagComps(comps, data)
	positionalComps(comps, data)

	for _, sub := range data.Commands() {
		subCmd := findCommand(cmd, sub.Name())
		if subCmd == nil {
			return comps, fmt.Errorf("%w: %s", errCommandNotFound, sub.Name())
		}

		if _, err := Generate(subCmd, sub, nil); err != nil {
			return comps, err
		}
	}

	return comps, nil
}

// flagComps registers completions for all options declaring choices.
func flagComps(comps *comp.Carapace, data *commander.Command) {
	actions := make(comp.ActionMap)

	for _, opt := range data.Options() {
		if len(opt.Choices) == 0 {
			continue
		}

		name := strings.TrimLeft(opt.Long, "-")
		if name == "" {
			name = opt.Name
		}

		actions[name] = comp.ActionValues(opt.Choices...)
	}

	if len(actions) > 0 {
		comps.FlagCompletion(actions)
	}
}

// positionalComps advertises each positional slot's usage token as a
// completion hint. A variadic slot hints all remaining positions.
func positionalComps(comps *comp.Carapace, data *commander.Command) {
	var actions []comp.Action

	for _, arg := range data.Args() {
		hint := comp.ActionValues().Usage(arg.Usage())

		if arg.Variadic {
			comps.PositionalAnyCompletion(hint)

			break
		}

		actions = append(actions, hint)
	}

	if len(actions) > 0 {
		comps.PositionalCompletion(actions...)
	}
}

// findCommand returns the bound cobra subcommand with the given name.
func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}

	return nil
}
