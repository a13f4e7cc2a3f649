package main

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply pending embedded database migrations"
}

func (c *MigrateCommand) Run(args []string) error {
	PrintHeader("Running migrations")

	ctx := context.Background()
	pool, err := database.NewPool(ctx, dbURL(), database.PoolConfig{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	PrintSuccess("Schema at version %d", version)
	return nil
}
