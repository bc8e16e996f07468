package readstate

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// SectionVisitInput records that a user opened a section of a project.
// A nil At means now.
type SectionVisitInput struct {
	UserID    uuid.UUID
	ProjectID string
	Section   string
	At        *time.Time
}

func (i SectionVisitInput) Validate() error {
	var fe domain.FieldErrors

	validateOwner(&fe, i.UserID, i.ProjectID)
	if !domain.Section(i.Section).IsValid() {
		fe.Add(domain.ErrUnknownSection, "section", "unknown section")
	}

	return fe.Err()
}

// MarkReadInput marks one entity as explicitly read. A nil At means now.
type MarkReadInput struct {
	UserID     uuid.UUID
	ProjectID  string
	EntityType string
	EntityID   string
	At         *time.Time
}

func (i MarkReadInput) Validate() error {
	var fe domain.FieldErrors

	validateOwner(&fe, i.UserID, i.ProjectID)
	if !domain.ReadEntityType(i.EntityType).IsValid() {
		fe.Add(domain.ErrUnknownEntityType, "entity_type", "unknown entity type")
	}
	if strings.TrimSpace(i.EntityID) == "" {
		fe.Add(domain.ErrEmptyField, "entity_id", "required")
	}

	return fe.Err()
}

func (i MarkReadInput) ref() domain.ItemRef {
	return domain.ItemRef{
		EntityType: domain.ReadEntityType(i.EntityType),
		EntityID:   strings.TrimSpace(i.EntityID),
	}
}

func validateOwner(fe *domain.FieldErrors, userID uuid.UUID, projectID string) {
	if userID == uuid.Nil {
		fe.Add(domain.ErrEmptyField, "user_id", "required")
	}
	if strings.TrimSpace(projectID) == "" {
		fe.Add(domain.ErrEmptyField, "project_id", "required")
	}
}

func validateCandidates(candidates []domain.UnreadCandidate) error {
	var fe domain.FieldErrors
	for _, c := range candidates {
		if !c.Ref.EntityType.IsValid() {
			fe.Add(domain.ErrUnknownEntityType, "entity_type", "unknown entity type "+string(c.Ref.EntityType))
			continue
		}
		if strings.TrimSpace(c.Ref.EntityID) == "" {
			fe.Add(domain.ErrEmptyField, "entity_id", "required")
		}
	}
	return fe.Err()
}
