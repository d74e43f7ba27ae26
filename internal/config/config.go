package config

import "slices"

// DefaultOutputDir is used when no --output option is given.
const DefaultOutputDir = "./dist"

// ProgramName is printed by the version and help commands.
const ProgramName = "openssg"

// Version and ReleaseDate can be overridden at build time:
//
//	go build -ldflags "-X 'github.com/Devon-White/openssg/internal/config.Version=1.1.0'"
var (
	Version     = "1.0.0"
	ReleaseDate = "2026-10-18"
)

// Options holds the parsed command-line options for one openssg run.
// It is built once by the argument parser and read-only afterwards.
type Options struct {
	input       string
	output      string // empty = DefaultOutputDir
	stylesheets []string
}

// NewOptions returns an option set. An empty output selects DefaultOutputDir.
func NewOptions(input, output string, stylesheets []string) Options {
	return Options{
		input:       input,
		output:      output,
		stylesheets: slices.Clone(stylesheets),
	}
}

// Input returns the source file or folder.
func (o Options) Input() string { return o.input }

// HasOutput reports whether an output folder was given explicitly.
func (o Options) HasOutput() bool { return o.output != "" }

// OutputDir returns the output folder, falling back to DefaultOutputDir.
func (o Options) OutputDir() string {
	if o.output == "" {
		return DefaultOutputDir
	}
	return o.output
}

// Stylesheets returns a copy of the stylesheet links in command-line order.
// The result is never nil.
func (o Options) Stylesheets() []string {
	if len(o.stylesheets) == 0 {
		return []string{}
	}
	return slices.Clone(o.stylesheets)
}
