package main

import (
	"strings"

	"github.com/aretw0/taproom/internal/cli"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [order...]",
	Short: "Order interactively in the terminal",
	Long: `Starts an interactive order. Answer questions with a table number or a flavour (by name or
number), type "pay" or "reset" at checkout and "exit" to leave. With --json every outcome is
written as one JSON object per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")

		svc, err := cli.NewServices(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunChat(cmd.Context(), svc.Engine, logger, cli.ChatOptions{
			JSON:         jsonMode,
			Prompt:       strings.Join(args, " "),
			MaxInputSize: cfg.Runner.MaxInputSize,
			In:           cmd.InOrStdin(),
			Out:          cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
}
