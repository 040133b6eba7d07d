package cli

import (
	"io"

	"github.com/hummingbot/gateway-app/internal/config"
	"github.com/hummingbot/gateway-app/internal/logging"
	"github.com/spf13/cobra"
)

var (
	appHome   string
	logLevel  string
	logToFile bool

	// loaded at init time
	paths    config.Paths
	log      *logging.Logger
	logsSink *logging.DailyFile
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway-app",
		Short: "gateway-app — backend support layer for the gateway desktop shell",
		Long:  "gateway-app persists the shell's user-editable config document and reads the tail of the gateway's daily log file.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if appHome != "" {
				paths = config.PathsAt(appHome)
			} else {
				paths, err = config.ResolvePaths()
				if err != nil {
					return err
				}
			}
			level := logLevel
			if level == "" {
				level = "info"
			}
			var w io.Writer
			if logToFile {
				logsSink = logging.NewDailyFile(paths.Logs)
				w = logsSink
			}
			log = logging.New(w, level)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logsSink != nil {
				logsSink.Close()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&appHome, "app-home", "", "app data directory (default <user config dir>/gateway-app)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "log to the daily gateway log file instead of stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
