package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hummingbot/gateway-app/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write the app config document",
	}

	cmd.AddCommand(newConfigReadCmd())
	cmd.AddCommand(newConfigWriteCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Print the config document, creating it from the default on first read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewStore(paths)
			text, err := store.Read()
			if err != nil {
				return err
			}
			fmt.Print(text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Println()
			}
			return nil
		},
	}
}

func newConfigWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write [document]",
		Short: "Overwrite the config document (reads stdin when the argument is - or absent)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 && args[0] != "-" {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			store := config.NewStore(paths)
			if err := store.Write(text); err != nil {
				return err
			}

			log.Debug().Str("path", paths.Config).Int("bytes", len(text)).Msg("config written")
			fmt.Printf("Wrote %s\n", paths.Config)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(paths.Config)
		},
	}
}
