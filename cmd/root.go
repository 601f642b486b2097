package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"tokentrack/internal/app"
	"tokentrack/pkg/logging"

	"github.com/spf13/cobra"
)

// Flags shared by the dashboard and the config subcommands.
var (
	configPath string
	strict     bool
	logLevel   string
)

// Flags of the dashboard itself.
var (
	debug       bool
	dryRun      bool
	noAltScreen bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokentrack",
	Short: "Monitor LLM token usage and cost across providers",
	Long: `tokentrack is a terminal dashboard for LLM token usage and cost.

It reads its configuration from ~/.config/tokentrack/config.toml (or the file
given with --config), validates it, and opens the dashboard. An invalid
configuration is reported with every problem found and the dashboard does not
start.

Environment overrides:
  TOKENTRACK_THEME, TOKENTRACK_CONTRAST, TOKENTRACK_REFRESH_INTERVAL,
  TOKENTRACK_LOG_LEVEL`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initCLILogging,
	RunE:              runDashboard,
}

// initCLILogging sets up logging before any command runs so messages from
// the configuration loader reach stderr.
func initCLILogging(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	switch {
	case debug:
		level = logging.LevelDebug
	case logLevel != "":
		parsed, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		level = parsed
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	return nil
}

// runDashboard is the main entry point of the root command
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := &app.Config{
		ConfigPath:  configPath,
		Strict:      strict,
		Debug:       debug,
		LogLevel:    logLevel,
		DryRun:      dryRun,
		NoAltScreen: noAltScreen,
		Version:     cmd.Root().Version,
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// SetCommandName changes the name shown in usage and version output, for
// binaries installed under another name.
func SetCommandName(name string) {
	rootCmd.Use = name
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we only pick the exit code
		os.Exit(app.ExitCode(err))
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file or directory (default is $XDG_CONFIG_HOME/tokentrack/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unknown configuration fields")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level override (debug, info, warn, error)")

	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Run without contacting any provider")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render in the normal terminal buffer")
}
