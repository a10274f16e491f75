package main

import (
	"context"
	"fmt"

	"fueltrack/internal/db"
	"fueltrack/internal/seed"
	"fueltrack/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the embedded store with dev fuel data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.DatabaseURL == "" {
			return fmt.Errorf("seeding requires DATABASE_URL")
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		fuelRepo := store.NewFuelRepository(pool)

		logrus.Info("Seeding fuel data...")
		if err := seed.SeedFuelData(ctx, fuelRepo); err != nil {
			return fmt.Errorf("failed to seed fuel data: %w", err)
		}

		logrus.Info("Fuel data seeded successfully")

		return nil
	},
}
