package cli

import (
	"fmt"

	"github.com/projtools/projtools/internal/branding"
	"github.com/projtools/projtools/internal/config"
	"github.com/projtools/projtools/internal/console"
	"github.com/projtools/projtools/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel  string
	logFormat string
)

// out is the console shared by every command, built in PersistentPreRun
// once flags and config are known.
var out = console.Discard()

// newRunner builds the process runner used by the frontend component.
var newRunner = func() runner.Runner { return runner.NewExecRunner() }

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from config)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates ready-to-build project skeletons: a Python backend package,
a React or Vue frontend, a FastAPI proxy, or a complete Electron+Python desktop app.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level, format := logLevel, logFormat
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		if format == "" {
			format = config.Get(config.KeyLogFormat)
		}
		out = console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), console.Options{
			LogLevel:  level,
			LogFormat: format,
		})
		out.Logger().Debug("starting", "command", cmd.CommandPath(), "version", buildVersion)
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once here because the root command silences them.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
