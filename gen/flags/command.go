package flags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/internal/errors"
	"github.com/reeflective/commander/internal/positional"
)

// setArgs installs the positional argument validator built from the
// command's compiled argument descriptors. Commands declaring no
// arguments accept any words, so that unknown subcommand names reach
// the unknown-subcommand action instead of cobra's legacy check.
func setArgs(cmd *commander.Command, cobraCmd *cobra.Command) {
	if len(cmd.Args()) == 0 {
		cobraCmd.Args = cobra.ArbitraryArgs

		return
	}

	args := positional.New(cmd.Args())
	cobraCmd.Args = args.ToCobraArgs()
}

// setRuns binds the command's action to the cobra command. Commands
// without an action but with subcommands reject unknown subcommand
// words with suggestions.
func setRuns(cmd *commander.Command, cobraCmd *cobra.Command) {
	if cmd.Runnable() {
		cobraCmd.RunE = func(_ *cobra.Command, words []string) error {
			return cmd.Execute(words)
		}

		return
	}

	if len(cmd.Commands()) > 0 {
		cobraCmd.RunE = unknownSubcommandAction
	}
}

// unknownSubcommandAction rejects words that matched no subcommand of a
// container command, suggesting close names when any exist. Invoked
// without words, the container just prints its help.
func unknownSubcommandAction(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		//nolint:wrapcheck
		return cmd.Help()
	}

	msg := fmt.Sprintf("%q for %q", args[0], cmd.Name())

	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += "\n\nDid you mean this?"

		for _, name := range suggestions {
			msg += "\n\t" + name
		}
	}

	return fmt.Errorf("%w %s", errors.ErrUnknownSubcommand, msg)
}
