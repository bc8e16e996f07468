package readstate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

var _ readStateRepo = &readStateRepoMock{}

type readStateRepoMock struct {
	GetOrCreateFunc        func(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)
	SetSectionVisitFunc    func(ctx context.Context, userID uuid.UUID, projectID string, section domain.Section, at time.Time) (domain.ReadState, error)
	MarkItemReadFunc       func(ctx context.Context, userID uuid.UUID, projectID string, ref domain.ItemRef, at time.Time) (domain.ReadState, error)
	ClearReadItemsFunc     func(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)
	ClearSectionVisitsFunc func(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error)

	calls struct {
		GetOrCreate []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
		}
		SetSectionVisit []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
			Section   domain.Section
			At        time.Time
		}
		MarkItemRead []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
			Ref       domain.ItemRef
			At        time.Time
		}
		ClearReadItems []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
		}
		ClearSectionVisits []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
		}
	}
	lockGetOrCreate        sync.RWMutex
	lockSetSectionVisit    sync.RWMutex
	lockMarkItemRead       sync.RWMutex
	lockClearReadItems     sync.RWMutex
	lockClearSectionVisits sync.RWMutex
}

func (mock *readStateRepoMock) GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error) {
	if mock.GetOrCreateFunc == nil {
		panic("readStateRepoMock.GetOrCreateFunc: method is nil but readStateRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID string
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, userID, projectID)
}

func (mock *readStateRepoMock) GetOrCreateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *readStateRepoMock) SetSectionVisit(ctx context.Context, userID uuid.UUID, projectID string, section domain.Section, at time.Time) (domain.ReadState, error) {
	if mock.SetSectionVisitFunc == nil {
		panic("readStateRepoMock.SetSectionVisitFunc: method is nil but readStateRepo.SetSectionVisit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID string
		Section   domain.Section
		At        time.Time
	}{Ctx: ctx, UserID: userID, ProjectID: projectID, Section: section, At: at}
	mock.lockSetSectionVisit.Lock()
	mock.calls.SetSectionVisit = append(mock.calls.SetSectionVisit, callInfo)
	mock.lockSetSectionVisit.Unlock()
	return mock.SetSectionVisitFunc(ctx, userID, projectID, section, at)
}

func (mock *readStateRepoMock) SetSectionVisitCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
	Section   domain.Section
	At        time.Time
} {
	mock.lockSetSectionVisit.RLock()
	calls := mock.calls.SetSectionVisit
	mock.lockSetSectionVisit.RUnlock()
	return calls
}

func (mock *readStateRepoMock) MarkItemRead(ctx context.Context, userID uuid.UUID, projectID string, ref domain.ItemRef, at time.Time) (domain.ReadState, error) {
	if mock.MarkItemReadFunc == nil {
		panic("readStateRepoMock.MarkItemReadFunc: method is nil but readStateRepo.MarkItemRead was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID string
		Ref       domain.ItemRef
		At        time.Time
	}{Ctx: ctx, UserID: userID, ProjectID: projectID, Ref: ref, At: at}
	mock.lockMarkItemRead.Lock()
	mock.calls.MarkItemRead = append(mock.calls.MarkItemRead, callInfo)
	mock.lockMarkItemRead.Unlock()
	return mock.MarkItemReadFunc(ctx, userID, projectID, ref, at)
}

func (mock *readStateRepoMock) MarkItemReadCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
	Ref       domain.ItemRef
	At        time.Time
} {
	mock.lockMarkItemRead.RLock()
	calls := mock.calls.MarkItemRead
	mock.lockMarkItemRead.RUnlock()
	return calls
}

func (mock *readStateRepoMock) ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error) {
	if mock.ClearReadItemsFunc == nil {
		panic("readStateRepoMock.ClearReadItemsFunc: method is nil but readStateRepo.ClearReadItems was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID string
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockClearReadItems.Lock()
	mock.calls.ClearReadItems = append(mock.calls.ClearReadItems, callInfo)
	mock.lockClearReadItems.Unlock()
	return mock.ClearReadItemsFunc(ctx, userID, projectID)
}

func (mock *readStateRepoMock) ClearReadItemsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockClearReadItems.RLock()
	calls := mock.calls.ClearReadItems
	mock.lockClearReadItems.RUnlock()
	return calls
}

func (mock *readStateRepoMock) ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (domain.ReadState, error) {
	if mock.ClearSectionVisitsFunc == nil {
		panic("readStateRepoMock.ClearSectionVisitsFunc: method is nil but readStateRepo.ClearSectionVisits was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID string
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockClearSectionVisits.Lock()
	mock.calls.ClearSectionVisits = append(mock.calls.ClearSectionVisits, callInfo)
	mock.lockClearSectionVisits.Unlock()
	return mock.ClearSectionVisitsFunc(ctx, userID, projectID)
}

func (mock *readStateRepoMock) ClearSectionVisitsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockClearSectionVisits.RLock()
	calls := mock.calls.ClearSectionVisits
	mock.lockClearSectionVisits.RUnlock()
	return calls
}
