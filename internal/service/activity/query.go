package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// Get returns a single event by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ActivityEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &e, nil
}

// List returns events matching the filters, newest first. Limit 0 means
// the configured default; values above the configured max are clamped.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.ActivityEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := clampLimit(input.Limit, s.cfg.DefaultListLimit, s.cfg.MaxListLimit)

	events, err := s.repo.List(ctx, input.filter(), limit, input.Skip)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return events, nil
}

// Recent returns the newest events, optionally scoped to one project.
func (s *Service) Recent(ctx context.Context, projectID *string, limit int) ([]domain.ActivityEvent, error) {
	if limit < 0 {
		return nil, domain.NewInvalidFilterError("limit", "must be non-negative")
	}

	var f domain.ActivityFilter
	if projectID != nil && strings.TrimSpace(*projectID) != "" {
		f.ProjectID = projectID
	}

	events, err := s.repo.List(ctx, f, clampLimit(limit, s.cfg.RecentDefaultLimit, s.cfg.RecentMaxLimit), 0)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return events, nil
}

// SummarizeByActor counts a project's events per actor, busiest first.
func (s *Service) SummarizeByActor(ctx context.Context, input SummaryInput) ([]domain.ActorSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	out, err := s.repo.SummarizeByActor(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("summarize activity by actor: %w", err)
	}
	return out, nil
}

// SummarizeByAction counts a project's events per action tag.
func (s *Service) SummarizeByAction(ctx context.Context, input SummaryInput) ([]domain.ActionSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	out, err := s.repo.SummarizeByAction(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("summarize activity by action: %w", err)
	}
	return out, nil
}

func clampLimit(limit, def, max int) int {
	if limit == 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}
