package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/readstate"
)

var _ readStateService = &readStateServiceMock{}

type readStateServiceMock struct {
	GetOrCreateFunc        func(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	UpdateSectionVisitFunc func(ctx context.Context, input readstate.SectionVisitInput) (*domain.ReadState, error)
	MarkItemReadFunc       func(ctx context.Context, input readstate.MarkReadInput) (*domain.ReadState, error)
	ClearReadItemsFunc     func(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	ClearSectionVisitsFunc func(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	EvaluateUnreadFunc     func(ctx context.Context, userID uuid.UUID, projectID string, candidates []domain.UnreadCandidate) ([]domain.UnreadResult, error)

	calls struct {
		GetOrCreate []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID string
		}
		UpdateSectionVisit []struct {
			Ctx   context.Context
			Input readstate.SectionVisitInput
		}
		MarkItemRead []struct {
			Ctx   context.Context
			Input readstate.MarkReadInput
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
		EvaluateUnread []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ProjectID  string
			Candidates []domain.UnreadCandidate
		}
	}
	lockGetOrCreate        sync.RWMutex
	lockUpdateSectionVisit sync.RWMutex
	lockMarkItemRead       sync.RWMutex
	lockClearReadItems     sync.RWMutex
	lockClearSectionVisits sync.RWMutex
	lockEvaluateUnread     sync.RWMutex
}

func (mock *readStateServiceMock) GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	if mock.GetOrCreateFunc == nil {
		panic("readStateServiceMock.GetOrCreateFunc: method is nil but readStateService.GetOrCreate was just called")
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

func (mock *readStateServiceMock) GetOrCreateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *readStateServiceMock) UpdateSectionVisit(ctx context.Context, input readstate.SectionVisitInput) (*domain.ReadState, error) {
	if mock.UpdateSectionVisitFunc == nil {
		panic("readStateServiceMock.UpdateSectionVisitFunc: method is nil but readStateService.UpdateSectionVisit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readstate.SectionVisitInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSectionVisit.Lock()
	mock.calls.UpdateSectionVisit = append(mock.calls.UpdateSectionVisit, callInfo)
	mock.lockUpdateSectionVisit.Unlock()
	return mock.UpdateSectionVisitFunc(ctx, input)
}

func (mock *readStateServiceMock) UpdateSectionVisitCalls() []struct {
	Ctx   context.Context
	Input readstate.SectionVisitInput
} {
	mock.lockUpdateSectionVisit.RLock()
	calls := mock.calls.UpdateSectionVisit
	mock.lockUpdateSectionVisit.RUnlock()
	return calls
}

func (mock *readStateServiceMock) MarkItemRead(ctx context.Context, input readstate.MarkReadInput) (*domain.ReadState, error) {
	if mock.MarkItemReadFunc == nil {
		panic("readStateServiceMock.MarkItemReadFunc: method is nil but readStateService.MarkItemRead was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readstate.MarkReadInput
	}{Ctx: ctx, Input: input}
	mock.lockMarkItemRead.Lock()
	mock.calls.MarkItemRead = append(mock.calls.MarkItemRead, callInfo)
	mock.lockMarkItemRead.Unlock()
	return mock.MarkItemReadFunc(ctx, input)
}

func (mock *readStateServiceMock) MarkItemReadCalls() []struct {
	Ctx   context.Context
	Input readstate.MarkReadInput
} {
	mock.lockMarkItemRead.RLock()
	calls := mock.calls.MarkItemRead
	mock.lockMarkItemRead.RUnlock()
	return calls
}

func (mock *readStateServiceMock) ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	if mock.ClearReadItemsFunc == nil {
		panic("readStateServiceMock.ClearReadItemsFunc: method is nil but readStateService.ClearReadItems was just called")
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

func (mock *readStateServiceMock) ClearReadItemsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockClearReadItems.RLock()
	calls := mock.calls.ClearReadItems
	mock.lockClearReadItems.RUnlock()
	return calls
}

func (mock *readStateServiceMock) ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error) {
	if mock.ClearSectionVisitsFunc == nil {
		panic("readStateServiceMock.ClearSectionVisitsFunc: method is nil but readStateService.ClearSectionVisits was just called")
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

func (mock *readStateServiceMock) ClearSectionVisitsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID string
} {
	mock.lockClearSectionVisits.RLock()
	calls := mock.calls.ClearSectionVisits
	mock.lockClearSectionVisits.RUnlock()
	return calls
}

func (mock *readStateServiceMock) EvaluateUnread(ctx context.Context, userID uuid.UUID, projectID string, candidates []domain.UnreadCandidate) ([]domain.UnreadResult, error) {
	if mock.EvaluateUnreadFunc == nil {
		panic("readStateServiceMock.EvaluateUnreadFunc: method is nil but readStateService.EvaluateUnread was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ProjectID  string
		Candidates []domain.UnreadCandidate
	}{Ctx: ctx, UserID: userID, ProjectID: projectID, Candidates: candidates}
	mock.lockEvaluateUnread.Lock()
	mock.calls.EvaluateUnread = append(mock.calls.EvaluateUnread, callInfo)
	mock.lockEvaluateUnread.Unlock()
	return mock.EvaluateUnreadFunc(ctx, userID, projectID, candidates)
}

func (mock *readStateServiceMock) EvaluateUnreadCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ProjectID  string
	Candidates []domain.UnreadCandidate
} {
	mock.lockEvaluateUnread.RLock()
	calls := mock.calls.EvaluateUnread
	mock.lockEvaluateUnread.RUnlock()
	return calls
}
