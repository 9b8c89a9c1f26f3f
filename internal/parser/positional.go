package parser

import "strings"

// Argument describes a single positional argument slot of a command.
// Descriptors are created once per recognized token when compiling an
// argument specification string, and are immutable afterwards.
type Argument struct {
	Name     string // Non-empty for every appended descriptor.
	Required bool   // "<name>" tokens. "[name]" tokens are optional.
	Variadic bool   // The token's inner name ended with "...".
}

// Usage renders the descriptor back into its specification token form,
// used when synthesizing usage strings for help output.
func (arg *Argument) Usage() string {
	name := arg.Name
	if arg.Variadic {
		name += "..."
	}

	if arg.Required {
		return "<" + name + ">"
	}

	return "[" + name + "]"
}

// CompileArguments compiles an argument specification string such as
// "<source> [dest...]" into an ordered list of argument descriptors.
//
// The parse is lenient: tokens without brackets, and tokens whose
// stripped name is empty, are silently dropped without affecting the
// other tokens. Variadic detection is per-token, independent of the
// token's position in the specification.
func CompileArguments(spec string) []*Argument {
	var args []*Argument

	for _, token := range strings.Fields(spec) {
		if arg := compileToken(token); arg != nil {
			args = append(args, arg)
		}
	}

	return args
}

// compileToken parses a single specification token,
// returning nil when the token yields no usable name.
func compileToken(token string) *Argument {
	arg := &Argument{}

	switch token[0] {
	case '<':
		arg.Required = true
		arg.Name = stripBrackets(token)
	case '[':
		arg.Name = stripBrackets(token)
	}

	if len(arg.Name) > 3 && strings.HasSuffix(arg.Name, "...") {
		arg.Variadic = true
		arg.Name = strings.TrimSuffix(arg.Name, "...")
	}

	if arg.Name == "" {
		return nil
	}

	return arg
}

// stripBrackets removes the first and last character of a token,
// without checking that the last one is a matching closing bracket.
func stripBrackets(token string) string {
	if len(token) < 2 {
		return ""
	}

	return token[1 : len(token)-1]
}
