// Command migrate applies the embedded SQL migrations to PostgreSQL.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/pflag"

	"shop_backend/internal/config"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/logger"
	"shop_backend/migrations"
)

const (
	databaseURLFlag = "database-url"
	directionFlag   = "direction"
	stepsFlag       = "steps"
)

type flags struct {
	databaseURL string
	direction   string
	steps       int
}

// migrationLogger forwards golang-migrate output to slog.
type migrationLogger struct {
	logger *slog.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l migrationLogger) Verbose() bool { return true }

func main() {
	log := logger.New(slog.LevelInfo, "text")

	f, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Error("invalid flags", "error", err)
		os.Exit(2)
	}
	if f.databaseURL == "" {
		f.databaseURL = infradb.MigrationURL(config.LoadDB())
	}

	if err := run(log, f); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	fs.StringVarP(&f.databaseURL, databaseURLFlag, "d", "", "pgx5:// URL; built from DB_* variables when empty")
	fs.StringVar(&f.direction, directionFlag, "up", "up or down")
	fs.IntVarP(&f.steps, stepsFlag, "n", 0, "number of migrations to apply; 0 applies all")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	var errs []error
	if f.direction != "up" && f.direction != "down" {
		errs = append(errs, fmt.Errorf("--%s: must be up or down, got %q", directionFlag, f.direction))
	}
	if f.steps < 0 {
		errs = append(errs, fmt.Errorf("--%s: must not be negative", stepsFlag))
	}
	return f, errors.Join(errs...)
}

func run(log *slog.Logger, f flags) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, f.databaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("failed to close migrate", "source_error", srcErr, "db_error", dbErr)
		}
	}()
	m.Log = migrationLogger{logger: log}

	switch {
	case f.steps > 0 && f.direction == "down":
		err = m.Steps(-f.steps)
	case f.steps > 0:
		err = m.Steps(f.steps)
	case f.direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info("migrations reverted", "direction", f.direction)
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("migrations applied", "direction", f.direction, "version", version, "dirty", dirty)
	return nil
}
