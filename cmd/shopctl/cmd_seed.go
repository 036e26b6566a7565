package main

import (
	"os"

	"shopbot/internal/errors"
	"shopbot/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

var catalogPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create or update catalog products from a YAML file",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&catalogPath, "file", "f", "config/catalog.yaml", "catalog file")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	file, err := os.Open(catalogPath)
	if err != nil {
		return errors.Wrap(err, "failed to open catalog file")
	}
	defer file.Close()

	products, err := loadCatalog(file)
	if err != nil {
		return err
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.close()

	repo := postgres.NewCatalogRepository(env.db)
	for _, product := range products {
		if err := repo.Save(cmd.Context(), product); err != nil {
			return errors.Wrapf(err, "failed to save %q", product.Name)
		}
	}

	cmd.Printf("Seeded %d products from %s\n", len(products), catalogPath)

	return nil
}
