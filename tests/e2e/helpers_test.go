//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/activitylog"
	readstaterepo "github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/readstate"
	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/sitetrack-backend/internal/app"
	"github.com/heartmarshall/sitetrack-backend/internal/auth"
	"github.com/heartmarshall/sitetrack-backend/internal/config"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
	"github.com/heartmarshall/sitetrack-backend/internal/service/readstate"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer serves the full middleware and routing stack over a
// PostgreSQL container shared through testhelper.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,PATCH,DELETE"},
		Activity: config.ActivityConfig{
			DefaultListLimit:      100,
			MaxListLimit:          500,
			RecentDefaultLimit:    50,
			RecentMaxLimit:        200,
			RetentionDays:         90,
			MaxRetentionDays:      365,
			PruneStatementTimeout: 30 * time.Second,
		},
	}

	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	migrator, err := postgres.NewMigrator(pool)
	require.NoError(t, err)

	handler := app.NewHandler(cfg, logger, app.Deps{
		Pool:      pool,
		Schema:    migrator,
		Activity:  activity.NewService(logger, activitylog.New(pool), postgres.NewTxManager(pool), cfg.Activity),
		ReadState: readstate.NewService(logger, readstaterepo.New(pool)),
		Tokens:    jwtMgr,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, jwt: jwtMgr}
}

// tokenFor mints an access token for a fresh actor with the given role.
func (ts *testServer) tokenFor(t *testing.T, name string, role domain.UserRole) (domain.Actor, string) {
	t.Helper()
	actor := domain.Actor{ID: uuid.New(), Name: name, Role: role}
	token, err := ts.jwt.GenerateAccessToken(actor)
	require.NoError(t, err)
	return actor, token
}

// do sends a JSON request and decodes the JSON response into out when
// out is non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "decode %s %s", method, path)
	}
	return resp
}

type eventJSON struct {
	ID             string         `json:"id"`
	ProjectID      *string        `json:"project_id"`
	UserID         string         `json:"user_id"`
	UserName       string         `json:"user_name"`
	Action         string         `json:"action"`
	EntityType     string         `json:"entity_type"`
	EntityID       string         `json:"entity_id"`
	Description    string         `json:"description"`
	Timestamp      time.Time      `json:"timestamp"`
	AdditionalData map[string]any `json:"additional_data"`
}

type readStateJSON struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	ProjectID      string            `json:"project_id"`
	LastTasksVisit *time.Time        `json:"last_tasks_visit"`
	LastRFIsVisit  *time.Time        `json:"last_rfis_visit"`
	ReadItems      map[string]string `json:"read_items"`
}

type errorJSON struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field"`
}
