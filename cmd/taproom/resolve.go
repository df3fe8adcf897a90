package main

import (
	"strings"

	"github.com/aretw0/taproom/internal/cli"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <order...>",
	Short: "Resolve a single turn and print the outcome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contextJSON, _ := cmd.Flags().GetString("context")
		format, _ := cmd.Flags().GetString("format")

		svc, err := cli.NewServices(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunResolve(cmd.Context(), svc.Engine, cmd.OutOrStdout(), cli.ResolveOptions{
			Prompt:  strings.Join(args, " "),
			Context: contextJSON,
			Format:  format,
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("context", "", `Session context as JSON, e.g. '{"table": 4, "snacks": ["Ready Salted"]}'`)
	resolveCmd.Flags().StringP("format", "f", cli.FormatJSON, "Output format: json, tree, markdown or mermaid")
}
