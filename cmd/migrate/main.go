package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/invitation-backend/pkg/config"
	"github.com/angelmondragon/invitation-backend/pkg/db"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/migrate"
)

const serviceName = "invite-migrate"

type options struct {
	cmd     string
	dir     string
	name    string
	version string
}

// target is the open database handed to commands that need one.
type target struct {
	db      *sql.DB
	dialect string
}

type command struct {
	needsDB bool
	run     func(ctx context.Context, opts options, t target) error
}

// gooseCommand runs a goose verb unchanged against the catalog database.
func gooseCommand(verb string) command {
	return command{needsDB: true, run: func(ctx context.Context, opts options, t target) error {
		return migrate.Run(ctx, t.db, t.dialect, opts.dir, verb)
	}}
}

var commands = map[string]command{
	"up":     gooseCommand("up"),
	"up-one": gooseCommand("up-by-one"),
	"down":   gooseCommand("down"),
	"redo":   gooseCommand("redo"),
	"reset":  gooseCommand("reset"),
	"status": gooseCommand("status"),
	"version": {needsDB: true, run: func(ctx context.Context, opts options, t target) error {
		if opts.version == "" {
			return errors.New("missing -version")
		}
		return migrate.MigrateToVersion(ctx, t.db, t.dialect, opts.dir, opts.version)
	}},
	"create": {run: func(_ context.Context, opts options, _ target) error {
		if opts.name == "" {
			return errors.New("missing -name")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
		if err != nil {
			return err
		}
		fmt.Println("created migration:", path)
		return nil
	}},
	"validate": {run: func(_ context.Context, opts options, _ target) error {
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return err
		}
		fmt.Println("migrations ok:", opts.dir)
		return nil
	}},
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, "|")
}

func main() {
	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: "+commandNames())
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	flag.StringVar(&opts.name, "name", "", "migration name for -cmd=create")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	_ = godotenv.Load()

	logg := logger.New(logger.Options{ServiceName: serviceName})
	if err := run(opts, logg); err != nil {
		logg.Error(context.Background(), "migrate.failed", err)
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", opts.cmd, err)
		os.Exit(1)
	}
}

func run(opts options, logg *logger.Logger) (err error) {
	cmd, ok := commands[opts.cmd]
	if !ok {
		return fmt.Errorf("unknown -cmd %q (want %s)", opts.cmd, commandNames())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	*logg = *logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": opts.cmd,
		"dir": opts.dir,
	})

	if !cmd.needsDB {
		return cmd.run(ctx, opts, target{})
	}

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		err = multierr.Append(err, client.Close())
	}()

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	t := target{db: sqlDB, dialect: db.Dialect(cfg.DB)}
	ctx = logg.WithField(ctx, "dialect", t.dialect)
	logg.Info(ctx, "migrate.start")

	if err := cmd.run(ctx, opts, t); err != nil {
		return err
	}
	logg.Info(ctx, "migrate.done")
	return nil
}
