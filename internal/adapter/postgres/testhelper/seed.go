package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// UniqueProject returns a project id no other test uses, so tests sharing
// the container stay isolated.
func UniqueProject() string {
	return "proj-" + uuid.New().String()[:8]
}

// EventOption tweaks an event before SeedEvent inserts it.
type EventOption func(*domain.ActivityEvent)

// WithActor sets the event's actor.
func WithActor(id uuid.UUID, name string) EventOption {
	return func(e *domain.ActivityEvent) {
		e.ActorID = id
		e.ActorName = name
	}
}

// WithAction sets the event's action.
func WithAction(a domain.ActivityAction) EventOption {
	return func(e *domain.ActivityEvent) { e.Action = a }
}

// WithEntity sets the event's entity reference.
func WithEntity(et domain.EntityType, id string) EventOption {
	return func(e *domain.ActivityEvent) {
		e.EntityType = et
		e.EntityID = id
	}
}

// WithOccurredAt sets the event's timestamp.
func WithOccurredAt(ts time.Time) EventOption {
	return func(e *domain.ActivityEvent) { e.OccurredAt = ts.UTC().Truncate(time.Microsecond) }
}

// SeedEvent inserts an activity event directly, bypassing the service's
// clock. Defaults to a task_created event one hour ago.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, projectID string, opts ...EventOption) domain.ActivityEvent {
	t.Helper()

	e := domain.ActivityEvent{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ActorID:     uuid.New(),
		ActorName:   "Seed Actor",
		Action:      domain.ActionTaskCreated,
		EntityType:  domain.EntityTypeTask,
		EntityID:    uuid.New().String()[:8],
		Description: "seeded event",
		OccurredAt:  time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&e)
	}

	var payload []byte
	if e.Payload != nil {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			t.Fatalf("testhelper: SeedEvent marshal payload: %v", err)
		}
		payload = b
	}

	var project *string
	if e.ProjectID != "" {
		project = &e.ProjectID
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO activity_log
		   (id, project_id, actor_id, actor_name, action, entity_type, entity_id, description, additional_data, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, project, e.ActorID, e.ActorName, string(e.Action), string(e.EntityType),
		e.EntityID, e.Description, payload, e.OccurredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}

	return e
}

// CountEvents returns the number of events stored for a project.
func CountEvents(t *testing.T, pool *pgxpool.Pool, projectID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM activity_log WHERE project_id = $1`, projectID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountEvents: %v", err)
	}
	return n
}

// CountReadStates returns the number of read-state rows for (user, project).
func CountReadStates(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, projectID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM user_activity WHERE user_id = $1 AND project_id = $2`, userID, projectID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountReadStates: %v", err)
	}
	return n
}
