// Package commands implements the CLI commands for sharetree.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/sharetree/internal/app"
	"go.trai.ch/sharetree/internal/build"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/ui/output"
)

// CLI represents the command line interface for sharetree.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	teaOptions []tea.ProgramOption
	now        func() time.Time
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*app.Result, error)
	Watch(ctx context.Context, opts app.RunOptions, onResult func(*app.Result)) error
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	lipgloss.SetColorProfile(output.ColorProfile())

	rootCmd := &cobra.Command{
		Use:           "sharetree",
		Short:         "Tree-shake module federation shared dependencies",
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

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the optimizer configuration")
	rootCmd.PersistentFlags().StringP("graph", "g", "", "Path to the module graph snapshot")
	rootCmd.PersistentFlags().StringP("out", "o", "", "Build output directory to patch")
	rootCmd.PersistentFlags().String("tracer", "", "Tracer backend (otel, progrock, none)")
	rootCmd.PersistentFlags().Bool("json", false, "Print the usage report as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		now:     time.Now,
	}

	rootCmd.AddCommand(c.newOptimizeCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// SetOutput sets the output and error writers for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// WithTeaOptions adds bubbletea program options to the watch dashboard.
// This is primarily used for testing to disable input/output.
func (c *CLI) WithTeaOptions(opts ...tea.ProgramOption) *CLI {
	c.teaOptions = append(c.teaOptions, opts...)
	return c
}

// runOptions reads the shared pass flags of cmd.
func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	graphPath, _ := cmd.Flags().GetString("graph")
	outDir, _ := cmd.Flags().GetString("out")
	tracer, _ := cmd.Flags().GetString("tracer")
	return app.RunOptions{
		ConfigPath: configPath,
		GraphPath:  graphPath,
		OutDir:     outDir,
		Tracer:     tracer,
	}
}
