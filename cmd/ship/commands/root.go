// Package commands implements the CLI commands for the ship release tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/build"
	"go.trai.ch/ship/internal/core/ports"
)

// CLI represents the command line interface for ship.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	root       string
	configPath string
	jsonLogs   bool
	logFormat  jsonSwitcher
}

// Application represents the application logic interface.
type Application interface {
	Release(ctx context.Context, opts app.ReleaseOptions) error
	Plan(ctx context.Context, opts app.Options) error
	Clean(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) error
}

// jsonSwitcher is implemented by loggers that support JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ship",
		Short:         "Build, test and package native addon releases",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.root, "root", "C", ".", "Project root directory")
	flags.StringVar(&c.configPath, "config", "", "Release configuration file (default ship.yaml under root)")
	flags.BoolVar(&c.jsonLogs, "json", false, "Emit logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logFormat != nil {
			c.logFormat.SetJSON(c.jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newReleaseCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger connects the --json flag to l when it supports JSON output.
func (c *CLI) WithLogger(l ports.Logger) *CLI {
	if s, ok := l.(jsonSwitcher); ok {
		c.logFormat = s
	}
	return c
}

func (c *CLI) options() app.Options {
	return app.Options{Root: c.root, ConfigPath: c.configPath}
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
