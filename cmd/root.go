package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Devon-White/openssg/internal/args"
	"github.com/Devon-White/openssg/internal/config"
	"github.com/Devon-White/openssg/internal/converter"
	"github.com/Devon-White/openssg/internal/pipeline"
)

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// NewRootCmd builds the openssg command. Flag parsing is left to
// internal/args because -s/--stylesheet takes a variable number of values.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.ProgramName + " <option>",
		Short: "Generate a static HTML site from text and markdown files",
		Long: `openssg converts .txt and .md documents into HTML files.

The output folder is deleted and rebuilt on every run, so it always matches
the current input. Stylesheet links given with -s are added to every page in
the order they appear on the command line.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
}

func run(cmd *cobra.Command, tokens []string) error {
	switch args.Detect(tokens) {
	case args.CommandVersion:
		printVersion(cmd.OutOrStdout())
		return nil
	case args.CommandHelp:
		printHelp(cmd.OutOrStdout())
		return nil
	}

	if err := args.Validate(tokens).Err(); err != nil {
		return err
	}
	opts := args.Parse(tokens)

	logger := newLogger(cmd.ErrOrStderr())

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	return pipeline.Run(ctx, opts, converter.New(logger), logger)
}

// Execute runs the root command with the process arguments and reports any
// error on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		report(root.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	var usageErr *args.UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	}
	return ExitFailure
}

func report(w io.Writer, err error) {
	var usageErr *args.UsageError
	if errors.As(err, &usageErr) {
		for _, d := range usageErr.Diagnostics {
			if d.Position >= 0 {
				fmt.Fprintf(w, "%s: argument %d: %s\n", config.ProgramName, d.Position+1, d)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", config.ProgramName, d)
		}
		fmt.Fprintf(w, "see '%s --help'\n", config.ProgramName)
		return
	}
	fmt.Fprintf(w, "%s: error: %v\n", config.ProgramName, err)
}
