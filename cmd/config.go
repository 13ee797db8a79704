package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Write the effective configuration as YAML",
	Long: `config writes the configuration that run and headless would use
(built-in defaults overlaid with --config) to file, or to stdout when no
file is given. Use it as a starting point for a custom config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		}
		if err := cfg.WriteYAML(args[0]); err != nil {
			return err
		}
		slog.Info("config written", "path", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
