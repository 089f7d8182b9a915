package command

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"filmhub/internal/app"
	"filmhub/internal/catalogimport"
	"filmhub/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run <seed.json>",
	Short: "Import a seed file into the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := catalogimport.ReadSeedFile(args[0])
		if err != nil {
			return err
		}

		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger := config.NewLogger(cfg)

		ctx := cmd.Context()
		store, closeStore, err := app.OpenStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		svcs := app.NewServices(store, cfg)
		im := catalogimport.NewImporter(svcs.Films, svcs.Users, svcs.Reviews, svcs.FavoriteLists, logger)
		res, err := im.Import(ctx, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d users, %d films, %d reviews, %d favorite lists\n",
			res.Users, res.Films, res.Reviews, res.FavoriteLists)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <seed.json>",
	Short: "Validate a seed file without touching the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := catalogimport.ReadSeedFile(args[0])
		if err != nil {
			return err
		}
		if err := seed.Check(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seed ok: %d users, %d films, %d reviews, %d favorite lists\n",
			len(seed.Users), len(seed.Films), len(seed.Reviews), len(seed.FavoriteLists))
		return nil
	},
}
