package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
	"github.com/heartmarshall/sitetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/sitetrack-backend/pkg/ctxutil"
)

//go:generate moq -out activity_service_mock_test.go -pkg rest . activityService

type activityService interface {
	activity.Recorder
	Get(ctx context.Context, id uuid.UUID) (*domain.ActivityEvent, error)
	List(ctx context.Context, input activity.ListInput) ([]domain.ActivityEvent, error)
	Recent(ctx context.Context, projectID *string, limit int) ([]domain.ActivityEvent, error)
	SummarizeByActor(ctx context.Context, input activity.SummaryInput) ([]domain.ActorSummary, error)
	SummarizeByAction(ctx context.Context, input activity.SummaryInput) ([]domain.ActionSummary, error)
	Prune(ctx context.Context, input activity.PruneInput) (int64, error)
}

// ActivityHandler serves /activity-logs.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type eventResponse struct {
	ID             string          `json:"id"`
	ProjectID      *string         `json:"project_id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	Action         string          `json:"action"`
	EntityType     string          `json:"entity_type"`
	EntityID       string          `json:"entity_id"`
	Description    string          `json:"description"`
	Timestamp      time.Time       `json:"timestamp"`
	AdditionalData json.RawMessage `json:"additional_data,omitempty"`
}

type actorSummaryResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}

type actionSummaryResponse struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

type recordRequest struct {
	ProjectID      string         `json:"project_id"`
	Action         string         `json:"action"`
	EntityType     string         `json:"entity_type"`
	EntityID       string         `json:"entity_id"`
	Description    string         `json:"description"`
	AdditionalData map[string]any `json:"additional_data"`
}

// Record handles POST /activity-logs. The actor is the authenticated caller.
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	action := domain.ActivityAction(req.Action)
	payload, err := domain.PayloadFromMap(action, req.AdditionalData)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("additional_data", "invalid payload"))
		return
	}

	event, err := h.svc.Record(r.Context(), activity.RecordInput{
		ProjectID:   req.ProjectID,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Action:      action,
		EntityType:  domain.EntityType(req.EntityType),
		EntityID:    req.EntityID,
		Description: req.Description,
		Payload:     payload,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toEventResponse(r.Context(), *event))
}

// Get handles GET /activity-logs/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	event, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEventResponse(r.Context(), *event))
}

// List handles GET /activity-logs.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	input := activity.ListInput{
		ProjectID:      qr.optString("project_id"),
		ActorID:        qr.optUUID("user_id"),
		Action:         qr.optString("action"),
		EntityType:     qr.optString("entity_type"),
		EntityID:       qr.optString("entity_id"),
		OccurredAfter:  qr.startDate("start_date", "occurred_after"),
		OccurredBefore: qr.endDate("end_date", "occurred_before"),
		Skip:           qr.intOr("skip", 0),
		Limit:          qr.intOr("limit", 0),
	}
	if qr.err != nil {
		handleError(h.log, w, r, qr.err)
		return
	}

	events, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEventResponses(r.Context(), events))
}

// Recent handles GET /activity-logs/recent.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	projectID := qr.optString("project_id")
	limit := qr.intOr("limit", 0)
	if qr.err != nil {
		handleError(h.log, w, r, qr.err)
		return
	}

	events, err := h.svc.Recent(r.Context(), projectID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toEventResponses(r.Context(), events))
}

// SummaryByUser handles GET /activity-logs/summary/by-user.
func (h *ActivityHandler) SummaryByUser(w http.ResponseWriter, r *http.Request) {
	input, ok := h.summaryInput(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.SummarizeByActor(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]actorSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, actorSummaryResponse{UserID: s.ActorID.String(), Name: s.ActorName, Count: s.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

// SummaryByAction handles GET /activity-logs/summary/by-action.
func (h *ActivityHandler) SummaryByAction(w http.ResponseWriter, r *http.Request) {
	input, ok := h.summaryInput(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.SummarizeByAction(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]actionSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, actionSummaryResponse{Action: s.Action.String(), Count: s.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

// Cleanup handles DELETE /activity-logs/cleanup. Admin only.
func (h *ActivityHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	qr := newQueryReader(r)
	input := activity.PruneInput{
		DaysToKeep: qr.optInt("days_to_keep"),
		ProjectID:  qr.optString("project_id"),
	}
	if qr.err != nil {
		handleError(h.log, w, r, qr.err)
		return
	}

	deleted, err := h.svc.Prune(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (h *ActivityHandler) summaryInput(w http.ResponseWriter, r *http.Request) (activity.SummaryInput, bool) {
	qr := newQueryReader(r)
	input := activity.SummaryInput{
		OccurredAfter:  qr.startDate("start_date", "occurred_after"),
		OccurredBefore: qr.endDate("end_date", "occurred_before"),
	}
	if p := qr.optString("project_id"); p != nil {
		input.ProjectID = *p
	}
	if qr.err != nil {
		handleError(h.log, w, r, qr.err)
		return input, false
	}
	return input, true
}

func (h *ActivityHandler) toEventResponse(ctx context.Context, e domain.ActivityEvent) eventResponse {
	resp := eventResponse{
		ID:          e.ID.String(),
		UserID:      e.ActorID.String(),
		UserName:    e.ActorName,
		Action:      e.Action.String(),
		EntityType:  e.EntityType.String(),
		EntityID:    e.EntityID,
		Description: e.Description,
		Timestamp:   e.OccurredAt,
	}
	if e.ProjectID != "" {
		p := e.ProjectID
		resp.ProjectID = &p
	}

	data, err := domain.EncodePayload(e.Payload)
	if err != nil {
		h.log.WarnContext(ctx, "additional_data dropped from response",
			slog.String("event_id", resp.ID),
			slog.String("action", resp.Action),
			slog.String("error", err.Error()),
		)
		return resp
	}
	if len(data) > 0 {
		resp.AdditionalData = data
	}
	return resp
}

func (h *ActivityHandler) toEventResponses(ctx context.Context, events []domain.ActivityEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, h.toEventResponse(ctx, e))
	}
	return out
}
