package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc            func(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (domain.ActivityEvent, error)
	ListFunc              func(ctx context.Context, filter domain.ActivityFilter, limit int, offset int) ([]domain.ActivityEvent, error)
	SummarizeByActorFunc  func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActorSummary, error)
	SummarizeByActionFunc func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActionSummary, error)
	DeleteOlderThanFunc   func(ctx context.Context, cutoff time.Time, projectID *string) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.ActivityEvent
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ActivityFilter
			Limit  int
			Offset int
		}
		SummarizeByActor []struct {
			Ctx    context.Context
			Filter domain.ActivityFilter
		}
		SummarizeByAction []struct {
			Ctx    context.Context
			Filter domain.ActivityFilter
		}
		DeleteOlderThan []struct {
			Ctx       context.Context
			Cutoff    time.Time
			ProjectID *string
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockSummarizeByActor  sync.RWMutex
	lockSummarizeByAction sync.RWMutex
	lockDeleteOlderThan   sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ActivityEvent
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.ActivityEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.ActivityEvent, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *activityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *activityRepoMock) List(ctx context.Context, filter domain.ActivityFilter, limit int, offset int) ([]domain.ActivityEvent, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ActivityFilter
		Limit  int
		Offset int
	}{Ctx: ctx, Filter: filter, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, limit, offset)
}

func (mock *activityRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ActivityFilter
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *activityRepoMock) SummarizeByActor(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActorSummary, error) {
	if mock.SummarizeByActorFunc == nil {
		panic("activityRepoMock.SummarizeByActorFunc: method is nil but activityRepo.SummarizeByActor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ActivityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSummarizeByActor.Lock()
	mock.calls.SummarizeByActor = append(mock.calls.SummarizeByActor, callInfo)
	mock.lockSummarizeByActor.Unlock()
	return mock.SummarizeByActorFunc(ctx, filter)
}

func (mock *activityRepoMock) SummarizeByActorCalls() []struct {
	Ctx    context.Context
	Filter domain.ActivityFilter
} {
	mock.lockSummarizeByActor.RLock()
	calls := mock.calls.SummarizeByActor
	mock.lockSummarizeByActor.RUnlock()
	return calls
}

func (mock *activityRepoMock) SummarizeByAction(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActionSummary, error) {
	if mock.SummarizeByActionFunc == nil {
		panic("activityRepoMock.SummarizeByActionFunc: method is nil but activityRepo.SummarizeByAction was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ActivityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSummarizeByAction.Lock()
	mock.calls.SummarizeByAction = append(mock.calls.SummarizeByAction, callInfo)
	mock.lockSummarizeByAction.Unlock()
	return mock.SummarizeByActionFunc(ctx, filter)
}

func (mock *activityRepoMock) SummarizeByActionCalls() []struct {
	Ctx    context.Context
	Filter domain.ActivityFilter
} {
	mock.lockSummarizeByAction.RLock()
	calls := mock.calls.SummarizeByAction
	mock.lockSummarizeByAction.RUnlock()
	return calls
}

func (mock *activityRepoMock) DeleteOlderThan(ctx context.Context, cutoff time.Time, projectID *string) (int64, error) {
	if mock.DeleteOlderThanFunc == nil {
		panic("activityRepoMock.DeleteOlderThanFunc: method is nil but activityRepo.DeleteOlderThan was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Cutoff    time.Time
		ProjectID *string
	}{Ctx: ctx, Cutoff: cutoff, ProjectID: projectID}
	mock.lockDeleteOlderThan.Lock()
	mock.calls.DeleteOlderThan = append(mock.calls.DeleteOlderThan, callInfo)
	mock.lockDeleteOlderThan.Unlock()
	return mock.DeleteOlderThanFunc(ctx, cutoff, projectID)
}

func (mock *activityRepoMock) DeleteOlderThanCalls() []struct {
	Ctx       context.Context
	Cutoff    time.Time
	ProjectID *string
} {
	mock.lockDeleteOlderThan.RLock()
	calls := mock.calls.DeleteOlderThan
	mock.lockDeleteOlderThan.RUnlock()
	return calls
}
