package commands

import (
	"fmt"

	"bike-shop/config"
	"bike-shop/models"
	"bike-shop/repositories"
	"bike-shop/services"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter bikes when the catalog is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := config.ConnectDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer config.CloseDB(pool)

			if err := config.RunMigrations(cfg.DSN()); err != nil {
				return err
			}

			rdb := config.ConnectRedis(ctx, cfg)
			defer config.CloseRedis(rdb)

			var cache services.ItemCache
			if rdb != nil {
				cache = services.NewRedisItemCache(rdb, cfg.CacheTTL)
			}

			seeder := services.NewSeedService(repositories.NewItemRepository(pool), cache, models.StarterItems())
			inserted, err := seeder.SeedIfEmpty(ctx)
			if err != nil {
				return err
			}

			if inserted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog already has items, nothing seeded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d items.\n", inserted)
			return nil
		},
	}
}
