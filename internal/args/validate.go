package args

import (
	"fmt"
	"slices"
	"strings"
)

// Diagnostic messages reported by Validate.
const (
	MsgNoOption          = "no option provided, see help"
	MsgInputRequired     = "input option must be provided with an argument"
	MsgMissingArgument   = "missing option argument"
	MsgMissingStylesheet = "missing option argument, please provide CSS links to add"
)

// Diagnostic is one problem found in the command line.
type Diagnostic struct {
	// Position is the index of the offending token, or -1 when the problem
	// concerns the command line as a whole.
	Position int
	Flag     string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Flag == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Flag, d.Message)
}

// Result is the outcome of Validate.
type Result struct {
	Diagnostics []Diagnostic
}

// Valid reports whether no diagnostics were found.
func (r Result) Valid() bool { return len(r.Diagnostics) == 0 }

// Err returns a *UsageError for an invalid result, nil otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &UsageError{Diagnostics: slices.Clone(r.Diagnostics)}
}

// UsageError reports a command line that failed validation.
type UsageError struct {
	Diagnostics []Diagnostic
}

func (e *UsageError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return "invalid arguments: " + strings.Join(msgs, "; ")
}

// Validate checks the structure of a conversion command line without
// touching the file system. Every token is scanned so that all problems are
// reported, in the order they appear.
func Validate(tokens []string) Result {
	var res Result
	if len(tokens) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Position: -1, Message: MsgNoOption})
		return res
	}

	if !slices.ContainsFunc(tokens, func(t string) bool { return isOneOf(t, inputFlags) }) {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Position: -1, Flag: "--input", Message: MsgInputRequired})
		return res
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case isSingleValued(tok):
			if !hasValue(tokens, i) {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{Position: i, Flag: tok, Message: MsgMissingArgument})
				continue
			}
			i++
		case isOneOf(tok, stylesheetFlags):
			links := collectRun(tokens, i+1)
			if len(links) == 0 {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{Position: i, Flag: tok, Message: MsgMissingStylesheet})
				continue
			}
			i += len(links)
		}
	}
	return res
}
