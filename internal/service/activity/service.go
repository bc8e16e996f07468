package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/config"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

//go:generate moq -out activity_repo_mock_test.go -pkg activity . activityRepo
//go:generate moq -out tx_runner_mock_test.go -pkg activity . txRunner

type activityRepo interface {
	Create(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ActivityEvent, error)
	List(ctx context.Context, filter domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, error)
	SummarizeByActor(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActorSummary, error)
	SummarizeByAction(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActionSummary, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, projectID *string) (int64, error)
}

type txRunner interface {
	RunWithStatementTimeout(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error
}

// Recorder appends events to the ledger. Business services that emit
// activity depend on this rather than on *Service.
type Recorder interface {
	Record(ctx context.Context, input RecordInput) (*domain.ActivityEvent, error)
}

var _ Recorder = (*Service)(nil)

// Service is the activity ledger: it appends events and answers queries
// over them. Events are never modified after Record.
type Service struct {
	repo  activityRepo
	tx    txRunner
	cfg   config.ActivityConfig
	clock *Clock
	log   *slog.Logger
}

// NewService creates a new activity Service.
func NewService(
	log *slog.Logger,
	repo activityRepo,
	tx txRunner,
	cfg config.ActivityConfig,
) *Service {
	return &Service{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		clock: NewClock(time.Now),
		log:   log.With("service", "activity"),
	}
}
