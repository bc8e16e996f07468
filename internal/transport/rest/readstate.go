package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/readstate"
	"github.com/heartmarshall/sitetrack-backend/pkg/ctxutil"
)

//go:generate moq -out readstate_service_mock_test.go -pkg rest . readStateService

type readStateService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	UpdateSectionVisit(ctx context.Context, input readstate.SectionVisitInput) (*domain.ReadState, error)
	MarkItemRead(ctx context.Context, input readstate.MarkReadInput) (*domain.ReadState, error)
	ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (*domain.ReadState, error)
	EvaluateUnread(ctx context.Context, userID uuid.UUID, projectID string, candidates []domain.UnreadCandidate) ([]domain.UnreadResult, error)
}

// ReadStateHandler serves /user-activity/{project_id}. Every route acts on
// the authenticated caller's own state.
type ReadStateHandler struct {
	svc readStateService
	log *slog.Logger
}

// NewReadStateHandler creates a ReadStateHandler.
func NewReadStateHandler(svc readStateService, logger *slog.Logger) *ReadStateHandler {
	return &ReadStateHandler{svc: svc, log: logger.With("handler", "readstate")}
}

type readStateResponse struct {
	ID                    string            `json:"id"`
	UserID                string            `json:"user_id"`
	ProjectID             string            `json:"project_id"`
	LastRFIsVisit         *time.Time        `json:"last_rfis_visit"`
	LastSubmittalsVisit   *time.Time        `json:"last_submittals_visit"`
	LastChangeOrdersVisit *time.Time        `json:"last_change_orders_visit"`
	LastTasksVisit        *time.Time        `json:"last_tasks_visit"`
	LastDocumentsVisit    *time.Time        `json:"last_documents_visit"`
	ReadItems             map[string]string `json:"read_items"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

type sectionVisitRequest struct {
	Section   string `json:"section"`
	Timestamp string `json:"timestamp"`
}

type markReadRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Timestamp  string `json:"timestamp"`
}

type unreadRequest struct {
	Items []struct {
		EntityType string    `json:"entity_type"`
		EntityID   string    `json:"entity_id"`
		CreatedAt  time.Time `json:"created_at"`
	} `json:"items"`
}

type unreadItemResponse struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Unread     bool   `json:"unread"`
}

type unreadResponse struct {
	Items       []unreadItemResponse `json:"items"`
	UnreadCount int                  `json:"unread_count"`
}

// Get handles GET /user-activity/{project_id}.
func (h *ReadStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	state, err := h.svc.GetOrCreate(r.Context(), userID, projectID)
	h.respond(w, r, state, err)
}

// SectionVisit handles PUT|PATCH /user-activity/{project_id}/section-visit.
func (h *ReadStateHandler) SectionVisit(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req sectionVisitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	at, err := optTimestamp("timestamp", req.Timestamp)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	state, err := h.svc.UpdateSectionVisit(r.Context(), readstate.SectionVisitInput{
		UserID:    userID,
		ProjectID: projectID,
		Section:   req.Section,
		At:        at,
	})
	h.respond(w, r, state, err)
}

// MarkRead handles PUT|PATCH /user-activity/{project_id}/mark-read.
func (h *ReadStateHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	at, err := optTimestamp("timestamp", req.Timestamp)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	state, err := h.svc.MarkItemRead(r.Context(), readstate.MarkReadInput{
		UserID:     userID,
		ProjectID:  projectID,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		At:         at,
	})
	h.respond(w, r, state, err)
}

// ClearReadItems handles DELETE|PATCH /user-activity/{project_id}/clear-read-items.
func (h *ReadStateHandler) ClearReadItems(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	state, err := h.svc.ClearReadItems(r.Context(), userID, projectID)
	h.respond(w, r, state, err)
}

// ClearSectionVisits handles DELETE|PATCH /user-activity/{project_id}/clear-section-visits.
func (h *ReadStateHandler) ClearSectionVisits(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	state, err := h.svc.ClearSectionVisits(r.Context(), userID, projectID)
	h.respond(w, r, state, err)
}

// Unread handles POST /user-activity/{project_id}/unread.
func (h *ReadStateHandler) Unread(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req unreadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	candidates := make([]domain.UnreadCandidate, 0, len(req.Items))
	for _, it := range req.Items {
		candidates = append(candidates, domain.UnreadCandidate{
			Ref: domain.ItemRef{
				EntityType: domain.ReadEntityType(it.EntityType),
				EntityID:   strings.TrimSpace(it.EntityID),
			},
			CreatedAt: it.CreatedAt,
		})
	}

	results, err := h.svc.EvaluateUnread(r.Context(), userID, projectID, candidates)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := unreadResponse{
		Items:       make([]unreadItemResponse, 0, len(results)),
		UnreadCount: readstate.CountUnread(results),
	}
	for _, res := range results {
		resp.Items = append(resp.Items, unreadItemResponse{
			EntityType: res.Ref.EntityType.String(),
			EntityID:   res.Ref.EntityID,
			Unread:     res.Unread,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReadStateHandler) owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, "", false
	}
	return actor.ID, strings.TrimSpace(r.PathValue("project_id")), true
}

func (h *ReadStateHandler) respond(w http.ResponseWriter, r *http.Request, state *domain.ReadState, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReadStateResponse(state))
}

func toReadStateResponse(s *domain.ReadState) readStateResponse {
	items := make(map[string]string, len(s.ReadItems))
	for ref, at := range s.ReadItems {
		items[ref.FlatKey()] = at.UTC().Format(time.RFC3339Nano)
	}
	return readStateResponse{
		ID:                    s.ID.String(),
		UserID:                s.UserID.String(),
		ProjectID:             s.ProjectID,
		LastRFIsVisit:         s.LastVisit(domain.SectionRFIs),
		LastSubmittalsVisit:   s.LastVisit(domain.SectionSubmittals),
		LastChangeOrdersVisit: s.LastVisit(domain.SectionChangeOrders),
		LastTasksVisit:        s.LastVisit(domain.SectionTasks),
		LastDocumentsVisit:    s.LastVisit(domain.SectionDocuments),
		ReadItems:             items,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
