// Command migrate applies, rolls back or reports the database schema.
//
// Usage:
//
//	migrate up|down|status
//
// DATABASE_URL is read from the environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/pokecatch/pokecatch/internal/migrations"
)

type migrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
}

var errUsage = errors.New("usage: migrate up|down|status")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	command := args[0]
	if command != "up" && command != "down" && command != "status" {
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}

	_ = godotenv.Load()

	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := migrations.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		version, err := migrations.Up(ctx, db)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "schema at version %d\n", version)
	case "down":
		if err := migrations.Down(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(out, "all migrations rolled back")
	case "status":
		statuses, err := migrations.List(ctx, db)
		if err != nil {
			return err
		}
		printStatus(out, statuses)
	}
	return nil
}

func printStatus(out io.Writer, statuses []migrations.Status) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Source)
	}
	_ = tw.Flush()
}
