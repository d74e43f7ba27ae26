package args

import (
	"fmt"

	"github.com/Devon-White/openssg/internal/config"
)

// Parse builds the option set from a command line that has already passed
// Validate. Single-valued options keep their last occurrence; a later
// stylesheet run replaces an earlier one.
//
// Parse panics if a single-valued flag has no argument, since Validate
// rejects such command lines.
func Parse(tokens []string) config.Options {
	var input, output string
	var stylesheets []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case isOneOf(tok, inputFlags):
			input = valueAt(tokens, i)
			i++
		case isOneOf(tok, outputFlags):
			output = valueAt(tokens, i)
			i++
		case isOneOf(tok, stylesheetFlags):
			run := collectRun(tokens, i+1)
			stylesheets = append([]string(nil), run...)
			i += len(run)
		}
	}

	return config.NewOptions(input, output, stylesheets)
}

func valueAt(tokens []string, i int) string {
	if !hasValue(tokens, i) {
		panic(fmt.Sprintf("args: %s at position %d has no argument; command line was not validated", tokens[i], i))
	}
	return tokens[i+1]
}
