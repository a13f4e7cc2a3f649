package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BrandishEconomy/internal/database"
)

// SetupDBCommand creates the database when missing and migrates it
type SetupDBCommand struct{}

func (c *SetupDBCommand) Name() string {
	return "setup-db"
}

func (c *SetupDBCommand) Description() string {
	return "Create the database if it does not exist, then migrate it"
}

func (c *SetupDBCommand) Run(args []string) error {
	PrintHeader("Setting up database")
	return prepareDatabase(context.Background(), false)
}

// ResetDBCommand drops and recreates the database, then migrates it
type ResetDBCommand struct{}

func (c *ResetDBCommand) Name() string {
	return "reset-db"
}

func (c *ResetDBCommand) Description() string {
	return "Drop and recreate the database (destroys all balances), then migrate it"
}

func (c *ResetDBCommand) Run(args []string) error {
	if len(args) == 0 || args[0] != confirmYes {
		return fmt.Errorf("refusing to reset without confirmation: run 'devtool reset-db %s'", confirmYes)
	}
	PrintHeader("Resetting database")
	return prepareDatabase(context.Background(), true)
}

const confirmYes = "yes"

func prepareDatabase(ctx context.Context, drop bool) error {
	dbName := getEnv("DB_NAME", "brandisheconomy")
	ident := pgx.Identifier{dbName}.Sanitize()

	serverURL := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"))

	conn, err := pgx.Connect(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	if drop {
		PrintInfo("Terminating existing connections to %s...", dbName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
			PrintWarning("Failed to terminate connections: %v", err)
		}

		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
		PrintSuccess("Database %s dropped", dbName)
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", dbName)
	} else {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database %s created", dbName)
	}

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
