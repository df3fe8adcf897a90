package main

import (
	"github.com/aretw0/taproom/internal/cli"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		svc, err := cli.NewServices(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer svc.Close()

		return cli.RunMenu(svc.Engine, cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: markdown or json")
}
