// Package readstate persists per-user, per-project read progress.
//
// Each (user_id, project_id) pair owns exactly one user_activity row. Every
// mutator is an upsert, so callers never need to provision the row first.
// Explicitly read items are stored as nested JSONB keyed by entity type and
// then entity id, which keeps delimiters in ids from colliding.
package readstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

const table = "user_activity"

const returning = `RETURNING id, user_id, project_id,
	last_rfis_visit, last_submittals_visit, last_change_orders_visit,
	last_tasks_visit, last_documents_visit, read_items, created_at, updated_at`

const selectColumns = `SELECT id, user_id, project_id,
	last_rfis_visit, last_submittals_visit, last_change_orders_visit,
	last_tasks_visit, last_documents_visit, read_items, created_at, updated_at
	FROM user_activity`

// visitColumns whitelists the column written for each section. Section
// values never reach SQL text without passing through this map.
var visitColumns = map[domain.Section]string{
	domain.SectionRFIs:         "last_rfis_visit",
	domain.SectionSubmittals:   "last_submittals_visit",
	domain.SectionChangeOrders: "last_change_orders_visit",
	domain.SectionTasks:        "last_tasks_visit",
	domain.SectionDocuments:    "last_documents_visit",
}

// ErrUnknownSection is returned when a section has no backing column.
var ErrUnknownSection = errors.New("readstate: no column for section")

// Repo provides read-state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new read-state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetOrCreate returns the row for (userID, projectID), inserting an empty
// one first if none exists. Concurrent first calls converge on one row.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID, projectID string) (_ domain.ReadState, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "get_or_create")
	defer func() { postgres.EndSpan(span, err) }()

	q := postgres.QuerierFromCtx(ctx, r.pool)

	state, err := scanState(q.QueryRow(ctx,
		`INSERT INTO user_activity (id, user_id, project_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, project_id) DO NOTHING
		 `+returning,
		uuid.New(), userID, projectID,
	))
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}

	// Lost the race or the row already existed.
	state, err = scanState(q.QueryRow(ctx,
		selectColumns+` WHERE user_id = $1 AND project_id = $2`,
		userID, projectID,
	))
	if err != nil {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}
	return state, nil
}

// SetSectionVisit records a visit to one section at the given time.
func (r *Repo) SetSectionVisit(ctx context.Context, userID uuid.UUID, projectID string, section domain.Section, at time.Time) (_ domain.ReadState, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "set_section_visit")
	defer func() { postgres.EndSpan(span, err) }()

	col, ok := visitColumns[section]
	if !ok {
		return domain.ReadState{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	query := fmt.Sprintf(
		`INSERT INTO user_activity (id, user_id, project_id, %[1]s)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, project_id)
		 DO UPDATE SET %[1]s = EXCLUDED.%[1]s, updated_at = now()
		 %[2]s`, col, returning)

	state, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query,
		uuid.New(), userID, projectID, at,
	))
	if err != nil {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}
	return state, nil
}

// MarkItemRead stores the read timestamp for one entity, overwriting any
// earlier mark for it. Other entries are preserved.
func (r *Repo) MarkItemRead(ctx context.Context, userID uuid.UUID, projectID string, ref domain.ItemRef, at time.Time) (_ domain.ReadState, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "mark_item_read")
	defer func() { postgres.EndSpan(span, err) }()

	const query = `
		INSERT INTO user_activity (id, user_id, project_id, read_items)
		VALUES ($1, $2, $3, jsonb_build_object($4::text, jsonb_build_object($5::text, to_jsonb($6::timestamptz))))
		ON CONFLICT (user_id, project_id)
		DO UPDATE SET
			read_items = user_activity.read_items || jsonb_build_object(
				$4::text,
				COALESCE(user_activity.read_items -> $4::text, '{}'::jsonb)
					|| jsonb_build_object($5::text, to_jsonb($6::timestamptz))
			),
			updated_at = now()
		` + returning

	state, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query,
		uuid.New(), userID, projectID, string(ref.EntityType), ref.EntityID, at,
	))
	if err != nil {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}
	return state, nil
}

// ClearReadItems empties the read-items map. Section visits are untouched.
func (r *Repo) ClearReadItems(ctx context.Context, userID uuid.UUID, projectID string) (_ domain.ReadState, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "clear_read_items")
	defer func() { postgres.EndSpan(span, err) }()

	state, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO user_activity (id, user_id, project_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, project_id)
		 DO UPDATE SET read_items = '{}'::jsonb, updated_at = now()
		 `+returning,
		uuid.New(), userID, projectID,
	))
	if err != nil {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}
	return state, nil
}

// ClearSectionVisits nulls all five section visits. Read items are untouched.
func (r *Repo) ClearSectionVisits(ctx context.Context, userID uuid.UUID, projectID string) (_ domain.ReadState, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "clear_section_visits")
	defer func() { postgres.EndSpan(span, err) }()

	state, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO user_activity (id, user_id, project_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, project_id)
		 DO UPDATE SET
			last_rfis_visit = NULL,
			last_submittals_visit = NULL,
			last_change_orders_visit = NULL,
			last_tasks_visit = NULL,
			last_documents_visit = NULL,
			updated_at = now()
		 `+returning,
		uuid.New(), userID, projectID,
	))
	if err != nil {
		return domain.ReadState{}, postgres.MapError(err, table, key(userID, projectID))
	}
	return state, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanState(row pgx.Row) (domain.ReadState, error) {
	var (
		s                              domain.ReadState
		rfis, submittals, changeOrders *time.Time
		tasks, documents               *time.Time
		readItems                      []byte
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.ProjectID,
		&rfis, &submittals, &changeOrders, &tasks, &documents,
		&readItems, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.ReadState{}, err
	}

	s.Visits = make(map[domain.Section]time.Time, len(visitColumns))
	for section, ts := range map[domain.Section]*time.Time{
		domain.SectionRFIs:         rfis,
		domain.SectionSubmittals:   submittals,
		domain.SectionChangeOrders: changeOrders,
		domain.SectionTasks:        tasks,
		domain.SectionDocuments:    documents,
	} {
		if ts != nil {
			s.Visits[section] = ts.UTC()
		}
	}

	s.ReadItems, err = decodeReadItems(readItems)
	if err != nil {
		return domain.ReadState{}, fmt.Errorf("%s %s: %w", table, s.ID, err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func decodeReadItems(data []byte) (map[domain.ItemRef]time.Time, error) {
	out := make(map[domain.ItemRef]time.Time)
	if len(data) == 0 {
		return out, nil
	}

	var nested map[string]map[string]time.Time
	if err := json.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("decode read_items: %w", err)
	}
	for et, ids := range nested {
		for id, ts := range ids {
			out[domain.ItemRef{EntityType: domain.ReadEntityType(et), EntityID: id}] = ts.UTC()
		}
	}
	return out, nil
}

func key(userID uuid.UUID, projectID string) string {
	return userID.String() + "/" + projectID
}
