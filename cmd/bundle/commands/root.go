// Package commands implements the CLI commands for the bundle build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bundle/internal/app"
	"go.trai.ch/bundle/internal/build"
)

// devArg enables debug mode when passed as the first positional argument.
const devArg = "dev"

// CLI represents the command line interface for bundle.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Report(ctx context.Context, w io.Writer, opts app.ReportOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "bundle [dev]",
		Short: "Build the dist bundles",
		Long: "Build the library bundle, the geo assets, the bundle with metadata and every partial bundle.\n" +
			"Pass dev or --dev to embed source maps and skip the minified siblings.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: c.runBuild,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project directory the paths are relative to")
	rootCmd.Flags().Bool("dev", false, "Embed source maps and skip minification")
	rootCmd.Flags().IntP("jobs", "j", 0, "Maximum number of bundles built at once (default: number of CPUs)")
	rootCmd.Flags().BoolP("progress", "p", false, "Print each bundle's steps and outcome to stderr")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	dev, _ := cmd.Flags().GetBool("dev")
	jobs, _ := cmd.Flags().GetInt("jobs")
	root, _ := cmd.Flags().GetString("root")
	progress, _ := cmd.Flags().GetBool("progress")

	opts := app.RunOptions{
		Root:  root,
		Debug: dev || (len(args) > 0 && args[0] == devArg),
		Jobs:  jobs,
	}
	if progress {
		opts.Progress = cmd.ErrOrStderr()
	}

	return c.app.Run(cmd.Context(), opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
