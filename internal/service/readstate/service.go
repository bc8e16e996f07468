package readstate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

//go:generate moq -out readstate_repo_mock_test.go -pkg readstate . readStateRepo

type readStateRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)
	SetSectionVisit(ctx context.Context, userID uuid.UUID, projectID string, section domain.Section, at time.Time) (domain.ReadState, error)
	MarkItemRead(ctx context.Context, userID uuid.UUID, projectID string, ref domain.ItemRef, at time.Time) (domain.ReadState, error)
	ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)
	ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)
}

// Service tracks what each user has seen inside each project.
type Service struct {
	repo readStateRepo
	now  func() time.Time
	log  *slog.Logger
}

// NewService creates a new read-state Service.
func NewService(log *slog.Logger, repo readStateRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("service", "readstate"),
	}
}

// timestamp returns at, or the current time when at is nil, in UTC at the
// precision Postgres stores.
func (s *Service) timestamp(at *time.Time) time.Time {
	t := s.now()
	if at != nil {
		t = *at
	}
	return t.UTC().Truncate(time.Microsecond)
}
