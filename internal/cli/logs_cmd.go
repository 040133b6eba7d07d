package cli

import (
	"fmt"

	"github.com/hummingbot/gateway-app/internal/logtail"
	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect gateway log files",
	}

	cmd.AddCommand(newLogsTailCmd())

	return cmd
}

func newLogsTailCmd() *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "tail [gateway-path]",
		Short: "Print the last lines of today's gateway log",
		Long:  "Prints the last N lines of <gateway-path>/logs/logs_gateway_app.log.<today>. Defaults to the app home when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := paths.Base
			if len(args) == 1 {
				base = args[0]
			}

			res, err := logtail.Tail(base, lines)
			if err != nil {
				return err
			}
			if res.Malformed > 0 {
				log.Warn().Int("lines", res.Malformed).Msg("log lines contained invalid UTF-8, bytes replaced")
			}
			if res.Text != "" {
				fmt.Println(res.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lines, "lines", 100, "maximum number of lines to print")

	return cmd
}
