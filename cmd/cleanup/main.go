// Command cleanup prunes activity events older than the retention window.
// It is meant for an external cron job rather than an in-process ticker.
//
// Usage:
//
//	cleanup [--days=90] [--project=<id>]
//
// Without --days the configured ACTIVITY_RETENTION_DAYS applies. Exit
// codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/activitylog"
	"github.com/heartmarshall/sitetrack-backend/internal/app"
	"github.com/heartmarshall/sitetrack-backend/internal/config"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
)

func main() {
	days := flag.Int("days", -1, "days of activity to keep (default: configured retention)")
	project := flag.String("project", "", "restrict pruning to one project")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Activity.PruneStatementTimeout+time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := activity.NewService(logger, activitylog.New(pool), postgres.NewTxManager(pool), cfg.Activity)

	input := activity.PruneInput{}
	if *days >= 0 {
		input.DaysToKeep = days
	}
	if *project != "" {
		input.ProjectID = project
	}

	deleted, err := svc.Prune(ctx, input)
	if err != nil {
		logger.Error("prune failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Int64("deleted", deleted))
}
