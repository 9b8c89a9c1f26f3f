package flags

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/internal/errors"
)

// run generates the cobra tree for cmd and executes it with the given
// command-line words, output discarded.
func run(t *testing.T, cmd *commander.Command, words []string, optFuncs ...OptFunc) error {
	t.Helper()

	cobraCmd, err := Generate(cmd, optFuncs...)
	require.NoError(t, err)

	cobraCmd.SetOut(io.Discard)
	cobraCmd.SetErr(io.Discard)
	cobraCmd.SetArgs(words)

	return cobraCmd.Execute()
}

// noop is an action that succeeds without doing anything.
func noop([]string) error { return nil }

// TestGenerateNil checks the nil-command guard.
func TestGenerateNil(t *testing.T) {
	t.Parallel()

	cobraCmd, err := Generate(nil)
	assert.Nil(t, cobraCmd)
	assert.ErrorIs(t, err, errors.ErrNilCommand)
}

// TestGenerateTree checks that the cobra tree mirrors the command tree.
func TestGenerateTree(t *testing.T) {
	t.Parallel()

	root := commander.New("pizza")
	root.Description("order pizzas")
	root.SetVersion("0.1.0")

	order := root.Command("order <flavor> [extras...]")
	order.Alias("o")
	order.Action(noop)

	hidden := root.Command("debug")
	hidden.Hide()

	cobraCmd, err := Generate(root)
	require.NoError(t, err)

	assert.Equal(t, "pizza", cobraCmd.Name())
	assert.Equal(t, "order pizzas", cobraCmd.Short)
	assert.Equal(t, "0.1.0", cobraCmd.Version)
	require.Len(t, cobraCmd.Commands(), 2)

	var orderCmd *cobra.Command

	for _, sub := range cobraCmd.Commands() {
		if sub.Name() == "order" {
			orderCmd = sub
		}

		if sub.Name() == "debug" {
			assert.True(t, sub.Hidden)
		}
	}

	require.NotNil(t, orderCmd)
	assert.Equal(t, "order <flavor> [extras...]", orderCmd.Use)
	assert.Equal(t, []string{"o"}, orderCmd.Aliases)
}

// TestFlagBinding checks that parsed flag occurrences flow through the
// generated pflag set into the command's bound values.
func TestFlagBinding(t *testing.T) {
	t.Parallel()

	newCmd := func() *commander.Command {
		cmd := commander.New("order")
		cmd.Option("--no-sauce", "hold the sauce")
		cmd.Option("-s, --size <size>", "pizza size",
			[]string{"small", "medium", "large"}, "medium")
		cmd.Option("-c, --count <n>", "number of pizzas", commander.Int, 1)
		cmd.Option("--drink [drink]", "add a drink")
		cmd.Action(noop)

		return cmd
	}

	t.Run("defaults without occurrences", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd, nil))

		assert.Equal(t, true, cmd.Value("sauce"))
		assert.Equal(t, "medium", cmd.Value("size"))
		assert.Equal(t, 1, cmd.Value("count"))
		assert.Nil(t, cmd.Value("drink"))
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd,
			[]string{"-s", "large", "-c", "3", "--no-sauce"}))

		assert.Equal(t, false, cmd.Value("sauce"))
		assert.Equal(t, "large", cmd.Value("size"))
		assert.Equal(t, 3, cmd.Value("count"))
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd, []string{"-c", "2", "-c", "4"}))

		assert.Equal(t, 4, cmd.Value("count"))
	})

	t.Run("optional value present without value", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd, []string{"--drink"}))

		assert.Equal(t, true, cmd.Value("drink"))
	})

	t.Run("optional value with explicit value", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd, []string{"--drink=lemonade"}))

		assert.Equal(t, "lemonade", cmd.Value("drink"))
	})

	t.Run("invalid choice rejected at parse time", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		err := run(t, cmd, []string{"-s", "gigantic"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of small, medium, large")
		// The default must survive the rejected occurrence.
		assert.Equal(t, "medium", cmd.Value("size"))
	})
}

// TestIncrementFlag checks that a repeated bare flag with the Increment
// coercion binds its occurrence count.
func TestIncrementFlag(t *testing.T) {
	t.Parallel()

	cmd := commander.New("make")
	cmd.Option("-v, --verbose", "increase verbosity", commander.Increment)
	cmd.Action(noop)

	require.NoError(t, run(t, cmd, []string{"-v", "-v", "-v"}))
	assert.Equal(t, 3, cmd.Value("verbose"))
}

// TestTagValidation checks tag-based value validation on generated flags.
func TestTagValidation(t *testing.T) {
	t.Parallel()

	newCmd := func() *commander.Command {
		cmd := commander.New("serve")
		cmd.Option("-p, --port <port>", "listen port", commander.Validate("number"))
		cmd.Action(noop)

		return cmd
	}

	t.Run("inert without validation enabled", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		require.NoError(t, run(t, cmd, []string{"-p", "eight"}))
		assert.Equal(t, "eight", cmd.Value("port"))
	})

	t.Run("enforced with validation enabled", func(t *testing.T) {
		t.Parallel()

		cmd := newCmd()
		err := run(t, cmd, []string{"-p", "eight"}, WithValidation())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "`eight` is not a valid number")

		cmd = newCmd()
		require.NoError(t, run(t, cmd, []string{"-p", "8080"}, WithValidation()))
		assert.Equal(t, "8080", cmd.Value("port"))
	})
}

// TestPositionalValidation checks that declared argument slots gate the
// action, while undeclared ones keep cobra's permissive default.
func TestPositionalValidation(t *testing.T) {
	t.Parallel()

	newCmd := func(got *[]string) *commander.Command {
		cmd := commander.New("clone")
		cmd.Arguments("<source> [dest]")
		cmd.Action(func(args []string) error {
			*got = args

			return nil
		})

		return cmd
	}

	t.Run("words reach the action", func(t *testing.T) {
		t.Parallel()

		var got []string

		require.NoError(t, run(t, newCmd(&got), []string{"repo", "dir"}))
		assert.Equal(t, []string{"repo", "dir"}, got)
	})

	t.Run("missing required rejected", func(t *testing.T) {
		t.Parallel()

		var got []string

		err := run(t, newCmd(&got), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrRequired)
		assert.Contains(t, err.Error(), "`source` was not provided")
	})

	t.Run("excess words rejected", func(t *testing.T) {
		t.Parallel()

		var got []string

		err := run(t, newCmd(&got), []string{"a", "b", "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many arguments")
	})

	t.Run("no declared arguments accepts anything", func(t *testing.T) {
		t.Parallel()

		var got []string

		cmd := commander.New("echo")
		cmd.Action(func(args []string) error {
			got = args

			return nil
		})

		require.NoError(t, run(t, cmd, []string{"a", "b", "c"}))
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})
}

// TestSubcommandDispatch checks routing to subcommands and the rejection
// of unknown subcommand words.
func TestSubcommandDispatch(t *testing.T) {
	t.Parallel()

	newTree := func(ran *string) *commander.Command {
		root := commander.New("git")

		clone := root.Command("clone <source>")
		clone.Action(func([]string) error {
			*ran = "clone"

			return nil
		})

		pull := root.Command("pull")
		pull.Action(func([]string) error {
			*ran = "pull"

			return nil
		})

		return root
	}

	t.Run("dispatch by name", func(t *testing.T) {
		t.Parallel()

		var ran string

		require.NoError(t, run(t, newTree(&ran), []string{"clone", "repo"}))
		assert.Equal(t, "clone", ran)
	})

	t.Run("unknown subcommand suggested", func(t *testing.T) {
		t.Parallel()

		var ran string

		err := run(t, newTree(&ran), []string{"pul"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownSubcommand)
		assert.Contains(t, err.Error(), "pull")
		assert.Empty(t, ran)
	})

	t.Run("no words prints help", func(t *testing.T) {
		t.Parallel()

		var ran string

		root := newTree(&ran)
		cobraCmd, err := Generate(root)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		cobraCmd.SetOut(buf)
		cobraCmd.SetErr(io.Discard)
		cobraCmd.SetArgs(nil)

		require.NoError(t, cobraCmd.Execute())
		assert.Contains(t, buf.String(), "clone")
		assert.Empty(t, ran)
	})
}

// TestDuplicateRawFlags checks that re-declared raw flags share a single
// generated pflag while all their handlers keep firing.
func TestDuplicateRawFlags(t *testing.T) {
	t.Parallel()

	cmd := commander.New("test")
	cmd.Option("--color", "force colors")
	cmd.Option("--no-color", "disable colors")
	cmd.Action(noop)

	cobraCmd, err := Generate(cmd)
	require.NoError(t, err)

	require.NotNil(t, cobraCmd.Flags().Lookup("color"))
	require.NotNil(t, cobraCmd.Flags().Lookup("no-color"))

	cobraCmd.SetOut(io.Discard)
	cobraCmd.SetErr(io.Discard)
	cobraCmd.SetArgs([]string{"--no-color"})

	require.NoError(t, cobraCmd.Execute())
	assert.Equal(t, false, cmd.Value("color"))
}
