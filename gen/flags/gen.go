// Package flags generates a runnable cobra command tree from a
// declarative commander command tree. The generated pflag flags act as
// the tokenizer for the commands' option binders: every recognized flag
// occurrence is published to the owning command's event registry, where
// the binding handlers installed at registration time update the bound
// values.
package flags

import (
	"github.com/spf13/cobra"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/internal/errors"
)

// Generate returns a root cobra command mirroring the given command
// tree, to be used directly as an application entry-point with calls
// like cmd.Execute().
func Generate(root *commander.Command, optFuncs ...OptFunc) (*cobra.Command, error) {
	if root == nil {
		return nil, errors.ErrNilCommand
	}

	settings := defOpts().apply(optFuncs...)

	return generate(root, settings), nil
}

// generate builds the cobra command for one node and recurses into its
// subcommands.
func generate(cmd *commander.Command, settings cliOpts) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:         cmd.Usage(),
		Short:       cmd.Short(),
		Long:        cmd.Long(),
		Aliases:     cmd.Aliases(),
		Hidden:      cmd.IsHidden(),
		Version:     cmd.Version(),
		Annotations: map[string]string{},
	}

	generateTo(cmd, cobraCmd.Flags(), settings)

	setArgs(cmd, cobraCmd)
	setRuns(cmd, cobraCmd)

	for _, sub := range cmd.Commands() {
		cobraCmd.AddCommand(generate(sub, settings))
	}

	return cobraCmd
}
