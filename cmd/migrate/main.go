// Command migrate manages the database schema using the embedded goose
// migrations.
//
// Usage:
//
//	migrate up|down|status
//
// Requires DATABASE_DSN (or CONFIG_PATH) to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		log.Fatalf("init migrator: %v", err)
	}
	defer m.Close()

	if err := run(ctx, m, os.Args[1]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, m *postgres.Migrator, cmd string) error {
	switch cmd {
	case "up":
		results, err := m.Up(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("schema is up to date")
		}
		for _, r := range results {
			fmt.Printf("applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
		}
	case "down":
		r, err := m.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("rolled back %05d %s\n", r.Source.Version, r.Source.Path)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.UTC().Format(time.RFC3339)
			}
			fmt.Printf("%05d %-8s %s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
