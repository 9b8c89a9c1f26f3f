package commander

import "github.com/reeflective/commander/internal/parser"

// Arguments compiles an argument specification string and appends the
// resulting descriptors to the command's ordered argument list:
//
//	cmd.Arguments("<source> [dest...]")
//
// Tokens wrapped in angle brackets are required, tokens wrapped in square
// brackets are optional, and a token whose inner name ends with "..."
// is variadic. Malformed tokens are silently dropped: this never fails.
//
// A variadic token is recorded wherever it appears; callers are
// responsible for declaring it last.
func (c *Command) Arguments(spec string) {
	c.args = append(c.args, parser.CompileArguments(spec)...)
}
