// Command seed loads the countries/cities/airports reference data that the
// lookup service reads. It talks to the same database as the server and
// uses the same PG_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"infinite-experiment/airport-lookup/internal/common"
	"infinite-experiment/airport-lookup/internal/config"
	"infinite-experiment/airport-lookup/internal/db"
	"infinite-experiment/airport-lookup/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Provision airport reference data",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var loadCmd = &cobra.Command{
	Use:   "load <dataset.json>",
	Short: "Replace countries, cities and airports with a JSON dataset",
	Long: `Creates the tables if needed, then deletes every country, city and
airport and inserts the dataset in one transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print row counts",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(loadCmd, statsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withORM(ctx, func(gormDB *gorm.DB) error {
		if err := db.SyncSchema(ctx, gormDB); err != nil {
			return err
		}

		stats, err := common.NewAirportLoaderService(gormDB).LoadFromFile(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load failed: %w", err)
		}

		cmd.Printf("Loaded %d countries, %d cities, %d airports.\n", stats.Countries, stats.Cities, stats.Airports)
		return nil
	})
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	return withORM(ctx, func(gormDB *gorm.DB) error {
		stats, err := common.NewAirportLoaderService(gormDB).GetStats(ctx)
		if err != nil {
			return err
		}

		cmd.Printf("countries: %d\ncities:    %d\nairports:  %d\n", stats.Countries, stats.Cities, stats.Airports)
		return nil
	})
}

func withORM(ctx context.Context, fn func(*gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		return err
	}
	defer logging.Close()

	var sqlDB *sqlx.DB
	if sqlDB, err = db.Connect(ctx, cfg.Database); err != nil {
		return err
	}
	defer sqlDB.Close()

	gormDB, err := db.OpenORM(db.PostgresDialector(sqlDB.DB))
	if err != nil {
		return err
	}

	return fn(gormDB)
}
