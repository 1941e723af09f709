// Package commands implements the CLI commands for msb.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/msb/internal/app"
	"go.trai.ch/msb/internal/build"
)

// DefaultProject is the project file used when no path is given.
const DefaultProject = "msb.proj"

// CLI represents the command line interface for msb.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "msb",
		Short:         "Inspect the targets and tasks of build project files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.String(),
	}

	// Registered before the default flags so -v belongs to --verbose.
	rootCmd.PersistentFlags().StringP("project", "p", DefaultProject, "Path to the project file")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text|yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		a.SetVerbose(verbose)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
