package readstate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// GetOrCreate returns the user's read state in a project, creating an
// empty one on first access.
func (s *Service) GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	var fe domain.FieldErrors
	validateOwner(&fe, userID, projectID)
	if err := fe.Err(); err != nil {
		return nil, err
	}

	state, err := s.repo.GetOrCreate(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get read state: %w", err)
	}
	return &state, nil
}

// UpdateSectionVisit stamps the section's last visit with input.At, or the
// current time when At is nil.
func (s *Service) UpdateSectionVisit(ctx context.Context, input SectionVisitInput) (*domain.ReadState, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	section := domain.Section(input.Section)
	state, err := s.repo.SetSectionVisit(ctx, input.UserID, input.ProjectID, section, s.timestamp(input.At))
	if err != nil {
		return nil, fmt.Errorf("update section visit: %w", err)
	}

	s.log.InfoContext(ctx, "section visited",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID),
		slog.String("section", section.String()),
	)

	return &state, nil
}

// MarkItemRead marks one entity read at input.At, or now. Marking it again
// overwrites the stored timestamp.
func (s *Service) MarkItemRead(ctx context.Context, input MarkReadInput) (*domain.ReadState, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref := input.ref()
	state, err := s.repo.MarkItemRead(ctx, input.UserID, input.ProjectID, ref, s.timestamp(input.At))
	if err != nil {
		return nil, fmt.Errorf("mark item read: %w", err)
	}

	s.log.InfoContext(ctx, "item marked read",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID),
		slog.String("item", ref.FlatKey()),
	)

	return &state, nil
}

// ClearReadItems forgets every explicit read mark. Section visits stay.
func (s *Service) ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	var fe domain.FieldErrors
	validateOwner(&fe, userID, projectID)
	if err := fe.Err(); err != nil {
		return nil, err
	}

	state, err := s.repo.ClearReadItems(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("clear read items: %w", err)
	}

	s.log.InfoContext(ctx, "read items cleared",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID),
	)

	return &state, nil
}

// ClearSectionVisits resets all five visit timestamps. Read marks stay.
func (s *Service) ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	var fe domain.FieldErrors
	validateOwner(&fe, userID, projectID)
	if err := fe.Err(); err != nil {
		return nil, err
	}

	state, err := s.repo.ClearSectionVisits(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("clear section visits: %w", err)
	}

	s.log.InfoContext(ctx, "section visits cleared",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID),
	)

	return &state, nil
}
