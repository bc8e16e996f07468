package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Activity  *ActivityHandler
	ReadState *ReadStateHandler
}

// NewRouter registers all routes. Health probes are public; everything
// else is wrapped with requireAuth.
func NewRouter(h Handlers, requireAuth func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, requireAuth(fn))
	}

	a := h.Activity
	private("GET /activity-logs", a.List)
	private("POST /activity-logs", a.Record)
	private("GET /activity-logs/recent", a.Recent)
	private("GET /activity-logs/summary/by-user", a.SummaryByUser)
	private("GET /activity-logs/summary/by-action", a.SummaryByAction)
	private("DELETE /activity-logs/cleanup", a.Cleanup)
	private("GET /activity-logs/{id}", a.Get)

	rs := h.ReadState
	private("GET /user-activity/{project_id}", rs.Get)
	private("PUT /user-activity/{project_id}/section-visit", rs.SectionVisit)
	private("PATCH /user-activity/{project_id}/section-visit", rs.SectionVisit)
	private("PUT /user-activity/{project_id}/mark-read", rs.MarkRead)
	private("PATCH /user-activity/{project_id}/mark-read", rs.MarkRead)
	private("DELETE /user-activity/{project_id}/clear-read-items", rs.ClearReadItems)
	private("PATCH /user-activity/{project_id}/clear-read-items", rs.ClearReadItems)
	private("DELETE /user-activity/{project_id}/clear-section-visits", rs.ClearSectionVisits)
	private("PATCH /user-activity/{project_id}/clear-section-visits", rs.ClearSectionVisits)
	private("POST /user-activity/{project_id}/unread", rs.Unread)

	return mux
}
