package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	RecordFunc            func(ctx context.Context, input activity.RecordInput) (*domain.ActivityEvent, error)
	GetFunc               func(ctx context.Context, id uuid.UUID) (*domain.ActivityEvent, error)
	ListFunc              func(ctx context.Context, input activity.ListInput) ([]domain.ActivityEvent, error)
	RecentFunc            func(ctx context.Context, projectID *string, limit int) ([]domain.ActivityEvent, error)
	SummarizeByActorFunc  func(ctx context.Context, input activity.SummaryInput) ([]domain.ActorSummary, error)
	SummarizeByActionFunc func(ctx context.Context, input activity.SummaryInput) ([]domain.ActionSummary, error)
	PruneFunc             func(ctx context.Context, input activity.PruneInput) (int64, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Input activity.RecordInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input activity.ListInput
		}
		Recent []struct {
			Ctx       context.Context
			ProjectID *string
			Limit     int
		}
		SummarizeByActor []struct {
			Ctx   context.Context
			Input activity.SummaryInput
		}
		SummarizeByAction []struct {
			Ctx   context.Context
			Input activity.SummaryInput
		}
		Prune []struct {
			Ctx   context.Context
			Input activity.PruneInput
		}
	}
	lockRecord            sync.RWMutex
	lockGet               sync.RWMutex
	lockList              sync.RWMutex
	lockRecent            sync.RWMutex
	lockSummarizeByActor  sync.RWMutex
	lockSummarizeByAction sync.RWMutex
	lockPrune             sync.RWMutex
}

func (mock *activityServiceMock) Record(ctx context.Context, input activity.RecordInput) (*domain.ActivityEvent, error) {
	if mock.RecordFunc == nil {
		panic("activityServiceMock.RecordFunc: method is nil but activityService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.RecordInput
	}{Ctx: ctx, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *activityServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input activity.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *activityServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.ActivityEvent, error) {
	if mock.GetFunc == nil {
		panic("activityServiceMock.GetFunc: method is nil but activityService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *activityServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *activityServiceMock) List(ctx context.Context, input activity.ListInput) ([]domain.ActivityEvent, error) {
	if mock.ListFunc == nil {
		panic("activityServiceMock.ListFunc: method is nil but activityService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *activityServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input activity.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *activityServiceMock) Recent(ctx context.Context, projectID *string, limit int) ([]domain.ActivityEvent, error) {
	if mock.RecentFunc == nil {
		panic("activityServiceMock.RecentFunc: method is nil but activityService.Recent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID *string
		Limit     int
	}{Ctx: ctx, ProjectID: projectID, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, projectID, limit)
}

func (mock *activityServiceMock) RecentCalls() []struct {
	Ctx       context.Context
	ProjectID *string
	Limit     int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

func (mock *activityServiceMock) SummarizeByActor(ctx context.Context, input activity.SummaryInput) ([]domain.ActorSummary, error) {
	if mock.SummarizeByActorFunc == nil {
		panic("activityServiceMock.SummarizeByActorFunc: method is nil but activityService.SummarizeByActor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.SummaryInput
	}{Ctx: ctx, Input: input}
	mock.lockSummarizeByActor.Lock()
	mock.calls.SummarizeByActor = append(mock.calls.SummarizeByActor, callInfo)
	mock.lockSummarizeByActor.Unlock()
	return mock.SummarizeByActorFunc(ctx, input)
}

func (mock *activityServiceMock) SummarizeByActorCalls() []struct {
	Ctx   context.Context
	Input activity.SummaryInput
} {
	mock.lockSummarizeByActor.RLock()
	calls := mock.calls.SummarizeByActor
	mock.lockSummarizeByActor.RUnlock()
	return calls
}

func (mock *activityServiceMock) SummarizeByAction(ctx context.Context, input activity.SummaryInput) ([]domain.ActionSummary, error) {
	if mock.SummarizeByActionFunc == nil {
		panic("activityServiceMock.SummarizeByActionFunc: method is nil but activityService.SummarizeByAction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.SummaryInput
	}{Ctx: ctx, Input: input}
	mock.lockSummarizeByAction.Lock()
	mock.calls.SummarizeByAction = append(mock.calls.SummarizeByAction, callInfo)
	mock.lockSummarizeByAction.Unlock()
	return mock.SummarizeByActionFunc(ctx, input)
}

func (mock *activityServiceMock) SummarizeByActionCalls() []struct {
	Ctx   context.Context
	Input activity.SummaryInput
} {
	mock.lockSummarizeByAction.RLock()
	calls := mock.calls.SummarizeByAction
	mock.lockSummarizeByAction.RUnlock()
	return calls
}

func (mock *activityServiceMock) Prune(ctx context.Context, input activity.PruneInput) (int64, error) {
	if mock.PruneFunc == nil {
		panic("activityServiceMock.PruneFunc: method is nil but activityService.Prune was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.PruneInput
	}{Ctx: ctx, Input: input}
	mock.lockPrune.Lock()
	mock.calls.Prune = append(mock.calls.Prune, callInfo)
	mock.lockPrune.Unlock()
	return mock.PruneFunc(ctx, input)
}

func (mock *activityServiceMock) PruneCalls() []struct {
	Ctx   context.Context
	Input activity.PruneInput
} {
	mock.lockPrune.RLock()
	calls := mock.calls.Prune
	mock.lockPrune.RUnlock()
	return calls
}
