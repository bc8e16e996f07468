package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is one immutable record of a past action. ProjectID is empty
// for events that do not belong to a project (logins, for instance).
type ActivityEvent struct {
	ID          uuid.UUID
	ProjectID   string
	ActorID     uuid.UUID
	ActorName   string
	Action      ActivityAction
	EntityType  EntityType
	EntityID    string
	Description string
	Payload     Payload
	OccurredAt  time.Time
}

// ActivityFilter selects events. Every field is optional; set fields are
// combined with AND.
type ActivityFilter struct {
	ProjectID      *string
	ActorID        *uuid.UUID
	Action         *ActivityAction
	EntityType     *EntityType
	EntityID       *string
	OccurredAfter  *time.Time
	OccurredBefore *time.Time
}

// ActorSummary is the number of events one actor produced.
type ActorSummary struct {
	ActorID   uuid.UUID
	ActorName string
	Count     int64
}

// ActionSummary is the number of events carrying one action tag.
type ActionSummary struct {
	Action ActivityAction
	Count  int64
}
