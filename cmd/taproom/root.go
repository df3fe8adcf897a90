package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/taproom/internal/cli"
	"github.com/aretw0/taproom/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taproom",
	Short: "Taproom turns free-text pub orders into priced proposals",
	Long: `Taproom resolves orders such as "2 pints of guinness and a bag of crisps for table 4".
When something is missing it asks a question instead of guessing; the caller answers by sending
the same order again with the answer in the context.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.NewLoader(path).Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		if err := config.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded

		logger, err = cli.NewLogger(cfg.Log, os.Stderr)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags puts explicitly set flags on top of file and environment settings.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		c.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("menu") {
		c.Menu.Path, _ = flags.GetString("menu")
	}
	if flags.Changed("cache") {
		c.Cache.Backend, _ = flags.GetString("cache")
	}
	if flags.Changed("redis-addr") {
		c.Cache.Redis.Addr, _ = flags.GetString("redis-addr")
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML configuration file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("menu", "", "Path to a YAML or JSON menu (default: built-in menu)")
	pf.String("cache", config.CacheNone, "Turn cache backend: none, memory or redis")
	pf.String("redis-addr", "", "Redis address for the redis cache backend")
}
