package activity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// RecordInput describes one event to append. The actor is passed
// explicitly by the caller.
type RecordInput struct {
	ProjectID   string
	ActorID     uuid.UUID
	ActorName   string
	Action      domain.ActivityAction
	EntityType  domain.EntityType
	EntityID    string
	Description string
	Payload     domain.Payload
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var fe domain.FieldErrors

	if i.ActorID == uuid.Nil {
		fe.Add(domain.ErrEmptyField, "actor_id", "required")
	}
	if strings.TrimSpace(i.ActorName) == "" {
		fe.Add(domain.ErrEmptyField, "actor_name", "required")
	}
	if strings.TrimSpace(i.Description) == "" {
		fe.Add(domain.ErrEmptyField, "description", "required")
	}
	if !i.Action.FitsColumn() {
		fe.Add(domain.ErrValidation, "action", "max 100 characters")
	}
	if !i.EntityType.FitsColumn() {
		fe.Add(domain.ErrValidation, "entity_type", "max 50 characters")
	}

	return fe.Err()
}

// ListInput holds the optional filters and paging for List. Action and
// EntityType match by equality; an unknown tag simply matches nothing.
type ListInput struct {
	ProjectID      *string
	ActorID        *uuid.UUID
	Action         *string
	EntityType     *string
	EntityID       *string
	OccurredAfter  *time.Time
	OccurredBefore *time.Time
	Skip           int
	Limit          int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var fe domain.FieldErrors

	if i.Skip < 0 {
		fe.Add(domain.ErrInvalidFilter, "skip", "must be non-negative")
	}
	if i.Limit < 0 {
		fe.Add(domain.ErrInvalidFilter, "limit", "must be non-negative")
	}
	validateRange(&fe, i.OccurredAfter, i.OccurredBefore)

	return fe.Err()
}

func (i ListInput) filter() domain.ActivityFilter {
	f := domain.ActivityFilter{
		ProjectID:      i.ProjectID,
		ActorID:        i.ActorID,
		EntityID:       i.EntityID,
		OccurredAfter:  i.OccurredAfter,
		OccurredBefore: i.OccurredBefore,
	}
	if i.Action != nil {
		a := domain.ActivityAction(*i.Action)
		f.Action = &a
	}
	if i.EntityType != nil {
		et := domain.EntityType(*i.EntityType)
		f.EntityType = &et
	}
	return f
}

// SummaryInput scopes a summary to one project and an optional time window.
type SummaryInput struct {
	ProjectID      string
	OccurredAfter  *time.Time
	OccurredBefore *time.Time
}

// Validate checks all fields and collects all errors.
func (i SummaryInput) Validate() error {
	var fe domain.FieldErrors

	if strings.TrimSpace(i.ProjectID) == "" {
		fe.Add(domain.ErrEmptyField, "project_id", "required")
	}
	validateRange(&fe, i.OccurredAfter, i.OccurredBefore)

	return fe.Err()
}

func (i SummaryInput) filter() domain.ActivityFilter {
	project := i.ProjectID
	return domain.ActivityFilter{
		ProjectID:      &project,
		OccurredAfter:  i.OccurredAfter,
		OccurredBefore: i.OccurredBefore,
	}
}

// PruneInput selects which events Prune removes. A nil DaysToKeep uses the
// configured retention.
type PruneInput struct {
	DaysToKeep *int
	ProjectID  *string
}

func validateRange(fe *domain.FieldErrors, after, before *time.Time) {
	if after != nil && before != nil && after.After(*before) {
		fe.Add(domain.ErrInvalidFilter, "start_date", "must not be after end_date")
	}
}
