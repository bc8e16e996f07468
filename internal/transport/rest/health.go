package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a named backing component probed by /ready and /health.
type Dependency struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	deps    []Dependency
	version string
	now     func() time.Time
}

func NewHealthHandler(version string, deps ...Dependency) *HealthHandler {
	return &HealthHandler{deps: deps, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now().UTC()})
}

// Ready answers 503 as soon as any dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ok, _ := h.probe(r.Context())
	resp := HealthResponse{Status: "ok", Timestamp: h.now().UTC()}
	status := http.StatusOK
	if !ok {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Health reports every dependency with its probe latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ok, comps := h.probe(r.Context())
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: comps,
		Timestamp:  h.now().UTC(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// probe pings all dependencies concurrently under a shared timeout.
func (h *HealthHandler) probe(ctx context.Context) (bool, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu    sync.Mutex
		comps = make(map[string]CompStatus, len(h.deps))
		allOK = true
	)
	var g errgroup.Group
	for _, d := range h.deps {
		g.Go(func() error {
			start := time.Now()
			err := d.Pinger.Ping(ctx)
			cs := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				cs = CompStatus{Status: "down"}
			}
			mu.Lock()
			comps[d.Name] = cs
			if err != nil {
				allOK = false
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait() //nolint:errcheck
	return allOK, comps
}
