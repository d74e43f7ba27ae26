// Package args validates and parses the openssg command line.
//
// The -s/--stylesheet option takes a variable number of values, consumed
// until the next flag, so parsing is done here rather than by pflag.
package args

import "strings"

// Command identifies what an invocation asks for, selected by the first token.
type Command int

const (
	CommandConvert Command = iota
	CommandVersion
	CommandHelp
)

var (
	inputFlags      = []string{"-i", "--input"}
	outputFlags     = []string{"-o", "--output"}
	stylesheetFlags = []string{"-s", "--stylesheet"}
	versionFlags    = []string{"-v", "--version"}
	helpFlags       = []string{"-h", "--help"}
)

// Detect returns the command selected by the first token. Anything other
// than a version or help flag is a conversion request.
func Detect(tokens []string) Command {
	if len(tokens) == 0 {
		return CommandConvert
	}
	switch {
	case isOneOf(tokens[0], versionFlags):
		return CommandVersion
	case isOneOf(tokens[0], helpFlags):
		return CommandHelp
	}
	return CommandConvert
}

// IsFlag reports whether a token looks like a flag.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}

func isOneOf(token string, flags []string) bool {
	for _, f := range flags {
		if token == f {
			return true
		}
	}
	return false
}

func isSingleValued(token string) bool {
	return isOneOf(token, inputFlags) || isOneOf(token, outputFlags)
}

// hasValue reports whether the flag at position i is followed by a usable
// value: present, not empty and not itself a flag.
func hasValue(tokens []string, i int) bool {
	return i+1 < len(tokens) && tokens[i+1] != "" && !IsFlag(tokens[i+1])
}

// collectRun returns the non-flag tokens starting at position start.
func collectRun(tokens []string, start int) []string {
	end := start
	for end < len(tokens) && !IsFlag(tokens[end]) {
		end++
	}
	return tokens[start:end]
}
