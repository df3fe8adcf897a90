package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/taproom"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of taproom",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taproom version %s\n", strings.TrimSpace(taproom.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
