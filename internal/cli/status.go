package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/hummingbot/gateway-app/internal/logtail"
	"github.com/hummingbot/gateway-app/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show resolved paths and file state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("gateway-app %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Base:    %s\n", paths.Base)
			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			if info, err := os.Stat(paths.Config); err == nil {
				fmt.Printf("Config:  present (%d bytes)\n", info.Size())
			} else if os.IsNotExist(err) {
				fmt.Println("Config:  not created yet (default applies on first read)")
			} else {
				fmt.Printf("Config:  error: %v\n", err)
			}

			today := logtail.FilePath(paths.Base, time.Now())
			if info, err := os.Stat(today); err == nil {
				fmt.Printf("Log:     %s (%d bytes)\n", today, info.Size())
			} else {
				fmt.Println("Log:     none for today")
			}

			return nil
		},
	}
}
