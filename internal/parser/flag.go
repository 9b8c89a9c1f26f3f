package parser

import (
	"regexp"
	"strings"
)

// Option describes a single flag option of a command, as parsed from its
// raw flags declaration string (eg. "-c, --count <n>", "--no-color").
//
// The descriptor is pure data: coercion functions and default values are
// bound separately by the command owning this option, and the descriptor
// order in the command's option list is the declaration order, used for
// help rendering only.
type Option struct {
	Flags         string   // The raw flags string, kept for help rendering.
	Short         string   // Short flag, with its dash (eg. "-c").
	Long          string   // Long flag, with its dashes (eg. "--count").
	Name          string   // Canonical name: long flag token without dashes or "no-" prefix.
	Key           string   // Binding key: camelCased canonical name.
	Negatable     bool     // True for "--no-x" style flags.
	ValueOptional bool     // The flag may be given a value ("[n]").
	ValueRequired bool     // The flag must be given a value ("<n>").
	Placeholder   string   // Value placeholder, without brackets.
	Description   string   // Help text.
	Choices       []string // When non-empty, only these values are accepted.
	ValidateTag   string   // Optional go-playground/validator tag for values.
}

// flagSeparators matches the token separators allowed
// in a raw flags string: spaces, commas and pipes.
var flagSeparators = regexp.MustCompile(`[ ,|]+`)

// ParseFlags parses a raw flags declaration string into an option
// descriptor. The parse is lenient: any string yields a descriptor,
// and callers are responsible for declaring sensible flags.
func ParseFlags(flags string) *Option {
	opt := &Option{
		Flags:         flags,
		Negatable:     strings.Contains(flags, "-no-"),
		ValueRequired: strings.Contains(flags, "<"),
		ValueOptional: strings.Contains(flags, "["),
	}

	tokens := flagSeparators.Split(strings.TrimSpace(flags), -1)

	// A leading token followed by another flag token is the short form.
	if len(tokens) > 1 && !isValueToken(tokens[1]) {
		opt.Short, tokens = tokens[0], tokens[1:]
	}

	if len(tokens) > 0 {
		opt.Long = tokens[0]
	}

	// Any remaining token is the value placeholder.
	if len(tokens) > 1 {
		opt.Placeholder = strings.Trim(tokens[1], "<>[]")
	}

	opt.Name = canonicalName(opt.Long, opt.Short)
	opt.Key = CamelCase(opt.Name)

	return opt
}

// canonicalName derives the option's canonical name (also used as its
// binding event name) from the long flag, falling back to the short one.
func canonicalName(long, short string) string {
	name := strings.TrimLeft(long, "-")
	if name == "" {
		name = strings.TrimLeft(short, "-")
	}

	return strings.TrimPrefix(name, "no-")
}

func isValueToken(token string) bool {
	return strings.HasPrefix(token, "<") || strings.HasPrefix(token, "[")
}
