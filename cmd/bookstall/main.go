package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/bookstall/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "bookstall",
	Short:   "Serve a read-only book catalog over HTTP",
	Long: `Bookstall serves a fixed catalog of books as HTML pages.

The full catalog is public at /allbooks; /getBooks returns the books of one
category to callers presenting the shared token.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path, repeatable; later files override earlier ones (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info, env: BOOKSTALL_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (default: text, env: BOOKSTALL_LOG_FORMAT)")
	rootCmd.PersistentFlags().String("catalog-file", "", "YAML catalog file (env: BOOKSTALL_CATALOG_FILE)")
	rootCmd.PersistentFlags().String("token-file", "", "file holding the access token (env: BOOKSTALL_AUTH_TOKEN_FILE)")
}

// loadConfig loads and validates configuration, installs the logger and
// stores the config in the command context.
func loadConfig(cmd *cobra.Command, _ []string) error {
	configFiles, _ := cmd.Flags().GetStringSlice("config")

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.Log)
	cmd.SetContext(config.WithContext(cmd.Context(), cfg))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
