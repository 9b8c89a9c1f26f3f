package commander

import (
	"strconv"
	"strings"

	"github.com/reeflective/commander/internal/values"
)

// Command is a single node of a declarative command tree. It owns the
// ordered lists of argument and option descriptors declared on it, the
// store of values bound to its options, and the event registry through
// which flag occurrences are reported. Registration is fully synchronous:
// Arguments and Option take effect at call time, and binding handlers run
// immediately and completely when their event is published.
type Command struct {
	name    string
	aliases []string
	short   string
	long    string
	version string
	hidden  bool

	parent   *Command
	commands []*Command

	args    []*Argument
	options []*Option

	store    *values.Store
	handlers map[string][]Handler

	action func(args []string) error
}

// New returns an empty command with the given name, to be used as the
// root of a command tree.
func New(name string) *Command {
	return &Command{
		name:     name,
		store:    values.NewStore(),
		handlers: make(map[string][]Handler),
	}
}

// Command registers a new subcommand and returns it. The usage string
// carries the subcommand name, optionally followed by an argument
// specification that is compiled onto the new command:
//
//	clone := repo.Command("clone <source> [dest]")
func (c *Command) Command(usage string) *Command {
	name, spec, _ := strings.Cut(usage, " ")

	sub := New(name)
	sub.parent = c

	if spec != "" {
		sub.Arguments(spec)
	}

	c.commands = append(c.commands, sub)

	return sub
}

// Action sets the function run when the command is dispatched, after flag
// parsing and positional argument validation. The function receives the
// command's positional words.
func (c *Command) Action(run func(args []string) error) {
	c.action = run
}

// Alias registers one or more alternative names for the command.
func (c *Command) Alias(aliases ...string) {
	c.aliases = append(c.aliases, aliases...)
}

// Description sets the command's one-line help description.
func (c *Command) Description(short string) {
	c.short = short
}

// LongDescription sets the command's long-form help text.
func (c *Command) LongDescription(long string) {
	c.long = long
}

// Hide marks the command as hidden from help and completions.
func (c *Command) Hide() {
	c.hidden = true
}

// SetVersion sets the version string reported by the command.
func (c *Command) SetVersion(version string) {
	c.version = version
}

//
// Accessors (read-only views used by generators and help rendering) ----- //
//

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Aliases returns the command's registered aliases.
func (c *Command) Aliases() []string { return c.aliases }

// Short returns the one-line help description.
func (c *Command) Short() string { return c.short }

// Long returns the long-form help text.
func (c *Command) Long() string { return c.long }

// Version returns the command's version string, if any.
func (c *Command) Version() string { return c.version }

// IsHidden reports whether the command is hidden.
func (c *Command) IsHidden() bool { return c.hidden }

// Parent returns the command's parent, or nil for a root command.
func (c *Command) Parent() *Command { return c.parent }

// Commands returns the command's subcommands, in registration order.
func (c *Command) Commands() []*Command { return c.commands }

// Args returns the command's positional argument descriptors, in order.
func (c *Command) Args() []*Argument { return c.args }

// Options returns the command's option descriptors, in declaration order.
func (c *Command) Options() []*Option { return c.options }

// Runnable reports whether an action has been set on the command.
func (c *Command) Runnable() bool { return c.action != nil }

// Execute runs the command's action with the given positional words.
// Commands without an action are containers and executing them is a no-op.
func (c *Command) Execute(args []string) error {
	if c.action == nil {
		return nil
	}

	return c.action(args)
}

// Usage synthesizes the command's usage line from its name and the
// compiled argument descriptors ("clone <source> [dest]").
func (c *Command) Usage() string {
	use := c.name

	for _, arg := range c.args {
		use += " " + arg.Usage()
	}

	return use
}

//
// Bound values ---------------------------------------------------------- //
//

// Value returns the value currently bound at the given binding key,
// or nil when the key has never been written.
func (c *Command) Value(key string) any {
	return c.store.Get(key).Interface()
}

// LookupValue returns the value bound at key,
// and whether the key holds a value at all.
func (c *Command) LookupValue(key string) (any, bool) {
	slot := c.store.Get(key)

	return slot.Interface(), slot.IsSet()
}

// Values returns a copy of the current contents of the value store.
func (c *Command) Values() map[string]any {
	return c.store.Snapshot()
}

// BindingKeys returns the sorted binding keys holding a value.
func (c *Command) BindingKeys() []string {
	return c.store.Keys()
}

// GetString returns the string bound at key, or fallback when the key is
// unset or holds a non-string value.
func (c *Command) GetString(key, fallback string) string {
	if str, ok := c.Value(key).(string); ok {
		return str
	}

	return fallback
}

// GetBool returns the boolean bound at key, or false when the key is
// unset or holds a non-boolean value.
func (c *Command) GetBool(key string) bool {
	val, _ := c.Value(key).(bool)

	return val
}

// GetInt returns the integer bound at key, converting bound strings when
// possible, or fallback otherwise.
func (c *Command) GetInt(key string, fallback int) int {
	switch val := c.Value(key).(type) {
	case int:
		return val
	case string:
		if num, err := strconv.Atoi(val); err == nil {
			return num
		}
	}

	return fallback
}
