package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/bookstall/config"
	"github.com/sagarc03/bookstall/seed"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the configured catalog",
	Long: `Print the catalog the server would serve, as YAML.

With --category only the items of that category are printed, matched the same
way /getBooks matches (case-insensitive).`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("category", "", "only print items of this category")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	catalog, err := seed.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	items := catalog.Items()
	if cmd.Flags().Changed("category") {
		category, _ := cmd.Flags().GetString("category")
		items = catalog.ByCategory(category)
	}

	data, err := seed.Encode(items)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
