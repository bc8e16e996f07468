package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// Record appends one event. occurred_at is assigned here and is
// non-decreasing across calls within the process.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.ActivityEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event := domain.ActivityEvent{
		ID:          uuid.New(),
		ProjectID:   strings.TrimSpace(input.ProjectID),
		ActorID:     input.ActorID,
		ActorName:   strings.TrimSpace(input.ActorName),
		Action:      input.Action,
		EntityType:  input.EntityType,
		EntityID:    strings.TrimSpace(input.EntityID),
		Description: strings.TrimSpace(input.Description),
		Payload:     input.Payload,
		OccurredAt:  s.clock.Now(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity recorded",
		slog.String("event_id", created.ID.String()),
		slog.String("project_id", created.ProjectID),
		slog.String("actor_id", created.ActorID.String()),
		slog.String("action", string(created.Action)),
		slog.String("entity", string(created.EntityType)+"/"+created.EntityID),
	)

	return &created, nil
}
