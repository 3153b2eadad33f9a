package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Devon-White/ocr-pipeline/internal/cli"
	"github.com/Devon-White/ocr-pipeline/internal/config"
	"github.com/Devon-White/ocr-pipeline/internal/logging"
	"github.com/Devon-White/ocr-pipeline/internal/pipeline"
	"github.com/Devon-White/ocr-pipeline/internal/writer"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/Devon-White/ocr-pipeline/cmd.version=...".
var (
	version = "0.1.0"
	author  = "ocr-pipeline developers"
)

// NewRootCmd builds a fresh ocr-pipeline command writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()
	format := string(writer.FormatDebug)
	var verbose bool
	values := &cli.Values{}

	rootCmd := &cobra.Command{
		Use:   "ocr-pipeline --input <path> --keywords <string> [--start-page <N>] [--end-page <N>]",
		Short: "Search scanned documents for keywords",
		Long: `ocr-pipeline searches the pages of a scanned document for keywords.

It accepts the document path, the keywords to look for and an optional page
span, then prints the parsed invocation.

Author: ` + author,
		Version:       version,
		Args:          noPositional,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// cobra installs a hidden __complete command on every root; only
		// the root itself may run.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd != cmd.Root() {
				return &cli.ParseError{Kind: cli.UnknownArgument, Args: []string{cmd.CalledAs()}}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireFlags(cmd.Flags(), "input", "keywords"); err != nil {
				return err
			}

			logger := logging.New(stderr, verbose)
			defer func() { _ = logger.Sync() }()

			return pipeline.Run(cmd.Context(), cfg, pipeline.Options{
				Out:    cmd.OutOrStdout(),
				Format: writer.Format(format),
				Logger: logger,
			})
		},
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&cfg.Input, "input", "i", "", "path to the document to search (required)")
	flags.StringVarP(&cfg.Keywords, "keywords", "k", "", "keywords to search for (required)")
	flags.Var(values.Uint(&cfg.StartPage, "start-page"), "start-page", "first page to search")
	flags.Var(values.Uint(&cfg.EndPage, "end-page"), "end-page", "last page to search; the default means no upper bound")
	flags.Var(values.Choice(&format, "format", writer.Formats()...), "format", "output format: debug or json")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	flags.BoolP("version", "V", false, "print version and exit")
	flags.BoolP("help", "h", false, "print help and exit")

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return values.Classify(err)
	})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd
}

func noPositional(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &cli.ParseError{Kind: cli.UnknownArgument, Args: []string{args[0]}}
	}
	return nil
}

// wantsHelp reports whether -h or --help appears before a "--" terminator.
func wantsHelp(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// Run parses args and executes the command. Parse errors are reported on
// stderr and returned as *cli.ParseError.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd(stdout, stderr)
	if wantsHelp(args) {
		return rootCmd.Help()
	}
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := cli.RejectFlagLikeValues(rootCmd.Flags(), args)
	if err == nil {
		err = rootCmd.ExecuteContext(ctx)
	}
	var pe *cli.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(stderr, "error: %v\n\n", pe)
		if pe.Kind == cli.MissingArgument {
			fmt.Fprint(stderr, rootCmd.UsageString())
		} else {
			fmt.Fprintf(stderr, "For more information, try '%s --help'.\n", rootCmd.Name())
		}
		return pe
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return err
}

// Execute runs the root command against the process arguments.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
