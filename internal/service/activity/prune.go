package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// Prune irreversibly deletes events older than DaysToKeep days, optionally
// within one project, and returns how many were removed. It runs under the
// configured statement timeout and does not batch.
func (s *Service) Prune(ctx context.Context, input PruneInput) (int64, error) {
	days := s.cfg.RetentionDays
	if input.DaysToKeep != nil {
		days = *input.DaysToKeep
	}
	if days < 0 || days > s.cfg.MaxRetentionDays {
		return 0, domain.NewInvalidFilterError("days_to_keep",
			fmt.Sprintf("must be between 0 and %d", s.cfg.MaxRetentionDays))
	}

	cutoff := s.clock.Now().AddDate(0, 0, -days)

	var deleted int64
	err := s.tx.RunWithStatementTimeout(ctx, s.cfg.PruneStatementTimeout, func(ctx context.Context) error {
		n, err := s.repo.DeleteOlderThan(ctx, cutoff, input.ProjectID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("prune activity: %w", err)
	}

	attrs := []any{
		slog.Int64("deleted", deleted),
		slog.Int("days_to_keep", days),
		slog.Time("cutoff", cutoff),
	}
	if input.ProjectID != nil {
		attrs = append(attrs, slog.String("project_id", *input.ProjectID))
	}
	s.log.InfoContext(ctx, "activity pruned", attrs...)

	return deleted, nil
}

