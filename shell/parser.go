package shell

import (
	"fmt"
	"strings"
)

// Tokenize trims raw and splits it on single spaces.
//
// Repeated spaces produce empty tokens unless collapse is set, in which case
// empty tokens are dropped. Tabs and other whitespace inside the line are not
// separators.
func Tokenize(raw string, collapse bool) []string {
	tokens := strings.Split(strings.TrimSpace(raw), " ")
	if !collapse {
		return tokens
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Validate checks tokens against the grammar. It is purely syntactic and never
// touches a tree. A nil error means the tokens may be dispatched.
func (r *Registry) Validate(tokens []string) error {
	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
	}

	cmd, ok := r.Lookup(name)
	if !ok {
		return &SyntaxError{
			Command: name,
			Err:     ErrUnknownCommand,
			msg: fmt.Sprintf("invalid command: %s. Supported commands are: %s",
				name, strings.Join(r.Names(), ", ")),
		}
	}

	if want := cmd.Arity + 1; len(tokens) != want {
		return &SyntaxError{
			Command: name,
			Err:     ErrArgCount,
			msg: fmt.Sprintf("%s: command line input must contain exactly %d element(s), got %d (usage: %s)",
				name, want, len(tokens), cmd.Usage),
		}
	}
	return nil
}
