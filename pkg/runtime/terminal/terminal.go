package terminal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/de-tools/timelog-reporter/pkg/runtime/terminal/commands"
	"github.com/de-tools/timelog-reporter/pkg/runtime/terminal/export"
	"github.com/de-tools/timelog-reporter/pkg/services/config"
	"github.com/de-tools/timelog-reporter/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env        *commands.Env
	errOut     io.Writer
	configPath string
	logLevel   string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// Registry overrides the default report registry
	Registry report.Registry
	Output   io.Writer
	ErrOut   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			Registry: opts.Registry,
			Reporter: export.NewReporter(opts.Output),
			Writer:   export.NewWriter(),
		},
		errOut: opts.ErrOut,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOut)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "timelog-reporter",
		Short:             "Summarise GitLab time tracking exports",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&cli.env.ProfilesPath, "profiles", defaultProfilesPath(),
		"Path to the profiles file (default is $HOME/.timelogcfg)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewReportCmd(cli.env, domain.ReportEmptyAccount,
		"Sum time per user for entries without an account label"))
	cmd.AddCommand(commands.NewReportCmd(cli.env, domain.ReportAccountTime,
		"Sum time per account label"))
	cmd.AddCommand(commands.NewReportCmd(cli.env, domain.ReportIssueWindow,
		"Summarise time per issue within a date window"))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		settings.LogLevel = cli.logLevel
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.errOut}).
		Level(level).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cli.env.Settings = settings
	if cli.env.Registry == nil {
		registry, err := report.NewDefaultRegistry(settings.DateParser())
		if err != nil {
			return err
		}
		cli.env.Registry = registry
	}
	return nil
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timelogcfg"
	}
	return filepath.Join(home, ".timelogcfg")
}
