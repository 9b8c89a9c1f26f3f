package commander

import (
	"regexp"

	"github.com/reeflective/commander/internal/parser"
	"github.com/reeflective/commander/internal/values"
)

// Option registers a flag option on the command and installs its binding
// handler. The flags string declares the short and long forms along with
// the value placeholder:
//
//	cmd.Option("-c, --count <n>", "number of copies", commander.Int, 1)
//	cmd.Option("--no-color", "disable colored output")
//	cmd.Option("-s, --size [size]", "pizza size", []string{"small", "large"})
//
// The extras are probed by type: a CoerceFunc converts each value
// before binding (value-less occurrences hand it an empty raw value,
// so occurrence counters like Increment see every firing), a
// *regexp.Regexp is turned into a coercion returning the first match
// (or the prior value when none), a []string declares the accepted
// choices, a Validate declares a validation tag, and any other non-nil
// value is the option's default. When a coercion was supplied, a later
// extra is the default.
//
// Negatable options ("--no-x") always default to true, regardless of any
// supplied default, so that the flag's absence implies the affirmative
// state. Defaults are written into the value store at registration time,
// before any flag occurrence is processed.
//
// Registering two options whose names map to the same binding key is not
// rejected: both descriptors are listed for help purposes, and their
// handlers race for the same value slot.
func (c *Command) Option(flags, description string, extras ...any) {
	opt := parser.ParseFlags(flags)
	opt.Description = description

	coerce, def := c.normalizeExtras(opt, extras)

	// Only options carrying a value, and negatable ones, are given a
	// default before parse time. Negation always wins over a custom
	// default: present means false, absent means true.
	if opt.Negatable || opt.ValueOptional || opt.ValueRequired {
		if opt.Negatable {
			def = true
		}

		if def != nil {
			c.store.Set(opt.Key, def)
		}
	}

	c.options = append(c.options, opt)
	c.Subscribe(opt.Name, c.bind(opt, coerce, def))
}

// normalizeExtras sorts the trailing Option arguments into a coercion
// function and a default value, recording choices and validation tags
// directly on the descriptor. Only the first default candidate is kept.
func (c *Command) normalizeExtras(opt *Option, extras []any) (coerce CoerceFunc, def any) {
	for _, extra := range extras {
		switch arg := extra.(type) {
		case nil:
			continue
		case CoerceFunc:
			coerce = arg
		case func(value string, prior any) any:
			coerce = arg
		case *regexp.Regexp:
			coerce = matchCoercion(arg)
		case []string:
			opt.Choices = arg
		case Validate:
			opt.ValidateTag = string(arg)
		default:
			if def == nil {
				def = arg
			}
		}
	}

	return coerce, def
}

// bind builds the binding handler installed for one option descriptor.
// The handler owns all state transitions of the option's value slot.
func (c *Command) bind(opt *Option, coerce CoerceFunc, def any) Handler {
	return func(val *string) {
		next := c.processed(opt, coerce, def, val)

		slot := c.store.Get(opt.Key)

		// A slot holding a non-boolean value is only
		// overwritten by firings that produced a value.
		if slot.Kind() == values.Other {
			if next != nil {
				c.store.Set(opt.Key, next)
			}

			return
		}

		// Unset and boolean slots accept any produced value.
		if next != nil {
			c.store.Set(opt.Key, next)

			return
		}

		switch {
		case opt.Negatable:
			c.store.Set(opt.Key, false)
		case truthy(def):
			c.store.Set(opt.Key, def)
		default:
			c.store.Set(opt.Key, true)
		}
	}
}

// processed computes the value produced by one firing: the raw value,
// or its coercion when one is installed. Coercions run on value-less
// firings too, with an empty raw value, so occurrence-counting
// coercions such as Increment see every firing. Negated firings never
// run coercions, and produce nothing.
func (c *Command) processed(opt *Option, coerce CoerceFunc, def any, val *string) any {
	if coerce == nil || (val == nil && opt.Negatable) {
		if val == nil {
			return nil
		}

		return *val
	}

	var raw string
	if val != nil {
		raw = *val
	}

	return coerce(raw, c.priorValue(opt.Key, def))
}

// priorValue is the fallback handed to coercion functions: the current
// bound value when the slot has been written, the default otherwise.
func (c *Command) priorValue(key string, def any) any {
	if slot := c.store.Get(key); slot.IsSet() {
		return slot.Interface()
	}

	return def
}

// matchCoercion synthesizes a coercion function from a regular
// expression: the first match of the expression against the value,
// or the fallback when the expression does not match.
func matchCoercion(exp *regexp.Regexp) CoerceFunc {
	return func(value string, prior any) any {
		if loc := exp.FindStringIndex(value); loc != nil {
			return value[loc[0]:loc[1]]
		}

		return prior
	}
}

// truthy reports whether a default value counts as set when deciding
// what a bare flag occurrence binds: nil, false, empty strings and
// numeric zeros do not.
func truthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
