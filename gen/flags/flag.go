package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/internal/validation"
)

// flagSet describes the interface that's implemented
// by the pflag library and required by the generator.
type flagSet interface {
	VarPF(value pflag.Value, name, shorthand, usage string) *pflag.Flag
	Lookup(name string) *pflag.Flag
}

var _ flagSet = (*pflag.FlagSet)(nil)

// presentNoValue is the NoOptDefVal sentinel marking a bare occurrence
// of an optional-value flag, so it can be told apart from explicit values.
const presentNoValue = "\x00"

// generateTo registers the command's option descriptors onto dst. Each
// generated pflag is backed by a bridge value publishing occurrences to
// the command's event registry.
func generateTo(cmd *commander.Command, dst flagSet, settings cliOpts) {
	for _, opt := range cmd.Options() {
		name := flagName(opt)

		// Options re-declared with the same raw flags share a single
		// pflag; all their binding handlers still fire on occurrence.
		if dst.Lookup(name) != nil {
			continue
		}

		bridge := &flagValue{
			cmd:      cmd,
			opt:      opt,
			validate: validation.Setup(opt, settings.validator),
		}

		flag := dst.VarPF(bridge, name, shorthand(opt, name), opt.Description)

		switch {
		case bridge.takesNoValue():
			flag.NoOptDefVal = "true"
		case opt.ValueOptional:
			flag.NoOptDefVal = presentNoValue
		}
	}
}

// flagName is the name under which the option is registered on the flag
// set: its long form without dashes, or its canonical name when the
// option only declared a short form.
func flagName(opt *commander.Option) string {
	if name := strings.TrimLeft(opt.Long, "-"); name != "" {
		return name
	}

	return opt.Name
}

// shorthand returns the option's short flag letter. Options declared
// with only a short form keep it as the shorthand of their single-letter
// flag name. pflag only accepts single-character shorthands.
func shorthand(opt *commander.Option, name string) string {
	if short := strings.TrimLeft(opt.Short, "-"); len(short) == 1 {
		return short
	}

	if len(name) == 1 {
		return name
	}

	return ""
}

// flagValue bridges a pflag flag to the option's binding pipeline: Set
// publishes the captured raw value (or nil for bare occurrences) to the
// event named after the option, and String renders the current bound
// value back for help and default display.
type flagValue struct {
	cmd      *commander.Command
	opt      *commander.Option
	validate func(val string) error
}

// Set implements pflag.Value by publishing the occurrence to the owning
// command. Values are validated before being published, so invalid ones
// surface as flag parse errors and never reach the binding handler.
func (v *flagValue) Set(raw string) error {
	if v.takesNoValue() || raw == presentNoValue {
		v.cmd.Publish(v.opt.Name, nil)

		return nil
	}

	if v.validate != nil {
		if err := v.validate(raw); err != nil {
			return err
		}
	}

	v.cmd.Publish(v.opt.Name, &raw)

	return nil
}

// String implements pflag.Value with the current bound value.
func (v *flagValue) String() string {
	val, isSet := v.cmd.LookupValue(v.opt.Key)
	if !isSet || val == nil {
		return ""
	}

	return fmt.Sprint(val)
}

// Type implements pflag.Value with the option's placeholder, used by
// help rendering as the flag's value hint.
func (v *flagValue) Type() string {
	if v.takesNoValue() {
		return "bool"
	}

	if v.opt.Placeholder != "" {
		return v.opt.Placeholder
	}

	return "string"
}

// takesNoValue reports whether occurrences of the flag never carry an
// explicit value: plain boolean flags and negated ("--no-x") ones.
func (v *flagValue) takesNoValue() bool {
	return !v.opt.ValueOptional && !v.opt.ValueRequired
}
