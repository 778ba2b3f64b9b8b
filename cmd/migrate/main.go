package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bank-ledger/internal/config"
	"bank-ledger/internal/database"

	_ "github.com/lib/pq"
)

// openDB is replaced in tests
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	os.Exit(run(context.Background(), os.Args[1:], logger))
}

// run executes one migration command and returns the process exit code
func run(ctx context.Context, args []string, logger *slog.Logger) int {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	steps := fs.Int("steps", 1, "number of migrations to roll back with 'down'")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: migrate [-steps N] up|down|version|seed\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	command := fs.Arg(0)

	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		logger.Error("Migrations require the postgres driver", slog.String("driver", cfg.Database.Driver))
		return 1
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()

	if err := runCommand(ctx, command, *steps, database.NewMigrationRunner(db, &cfg.Database)); err != nil {
		logger.Error("Migration command failed", slog.String("command", command), slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func runCommand(ctx context.Context, command string, steps int, runner *database.MigrationRunner) error {
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.RunMigrations()
	case "down":
		return runner.Rollback(steps)
	case "seed":
		return runner.LoadSeeds(ctx)
	case "version":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		slog.Info("Migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
