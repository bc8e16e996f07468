// Package activitylog implements the append-only activity ledger on PostgreSQL.
// Filtered queries are built with squirrel so every optional filter is a
// bound parameter.
package activitylog

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

const table = "activity_log"

var columns = []string{
	"id", "project_id", "actor_id", "actor_name", "action",
	"entity_type", "entity_id", "description", "additional_data", "occurred_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides activity event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an event. Events are never updated afterwards.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEvent) (_ domain.ActivityEvent, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "insert")
	defer func() { postgres.EndSpan(span, err) }()

	payload, err := domain.EncodePayload(e.Payload)
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			e.ID, nullableText(e.ProjectID), e.ActorID, e.ActorName, string(e.Action),
			nullableText(string(e.EntityType)), nullableText(e.EntityID), e.Description, payload, e.OccurredAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanEvent(row)
	if err != nil {
		return domain.ActivityEvent{}, postgres.MapError(err, table, e.ID.String())
	}
	return created, nil
}

// DeleteOlderThan removes events with occurred_at strictly before cutoff,
// optionally scoped to one project, and returns the number removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time, projectID *string) (_ int64, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "delete")
	defer func() { postgres.EndSpan(span, err) }()

	b := psql.Delete(table).Where(sq.Lt{"occurred_at": cutoff})
	if projectID != nil {
		b = b.Where(sq.Eq{"project_id": *projectID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, table, "prune")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single event.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (_ domain.ActivityEvent, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "select")
	defer func() { postgres.EndSpan(span, err) }()

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ActivityEvent{}, postgres.MapError(err, table, id.String())
	}
	return e, nil
}

// List returns events matching filter, newest first. Ties on occurred_at
// are broken by id so pages are stable.
func (r *Repo) List(ctx context.Context, filter domain.ActivityFilter, limit, offset int) (_ []domain.ActivityEvent, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "select")
	defer func() { postgres.EndSpan(span, err) }()

	b := applyFilter(psql.Select(columns...).From(table), filter).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "list")
	}
	defer rows.Close()

	events := []domain.ActivityEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, postgres.MapError(err, table, "list")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "list")
	}
	return events, nil
}

// SummarizeByActor counts matching events per actor.
func (r *Repo) SummarizeByActor(ctx context.Context, filter domain.ActivityFilter) (_ []domain.ActorSummary, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "summarize_by_actor")
	defer func() { postgres.EndSpan(span, err) }()

	b := applyFilter(psql.Select("actor_id", "actor_name", "count(*)").From(table), filter).
		GroupBy("actor_id", "actor_name").
		OrderBy("count(*) DESC", "actor_name ASC", "actor_id ASC")

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "summarize_by_actor")
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActorSummary, error) {
		var s domain.ActorSummary
		err := row.Scan(&s.ActorID, &s.ActorName, &s.Count)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, table, "summarize_by_actor")
	}
	return out, nil
}

// SummarizeByAction counts matching events per action tag.
func (r *Repo) SummarizeByAction(ctx context.Context, filter domain.ActivityFilter) (_ []domain.ActionSummary, err error) {
	ctx, span := postgres.StartSpan(ctx, table, "summarize_by_action")
	defer func() { postgres.EndSpan(span, err) }()

	b := applyFilter(psql.Select("action", "count(*)").From(table), filter).
		GroupBy("action").
		OrderBy("count(*) DESC", "action ASC")

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "summarize_by_action")
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActionSummary, error) {
		var (
			s      domain.ActionSummary
			action string
		)
		err := row.Scan(&action, &s.Count)
		s.Action = domain.ActivityAction(action)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, table, "summarize_by_action")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyFilter(b sq.SelectBuilder, f domain.ActivityFilter) sq.SelectBuilder {
	if f.ProjectID != nil {
		b = b.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.ActorID != nil {
		b = b.Where(sq.Eq{"actor_id": *f.ActorID})
	}
	if f.Action != nil {
		b = b.Where(sq.Eq{"action": string(*f.Action)})
	}
	if f.EntityType != nil {
		b = b.Where(sq.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		b = b.Where(sq.Eq{"entity_id": *f.EntityID})
	}
	if f.OccurredAfter != nil {
		b = b.Where(sq.GtOrEq{"occurred_at": *f.OccurredAfter})
	}
	if f.OccurredBefore != nil {
		b = b.Where(sq.LtOrEq{"occurred_at": *f.OccurredBefore})
	}
	return b
}

func scanEvent(row pgx.Row) (domain.ActivityEvent, error) {
	var (
		e                               domain.ActivityEvent
		projectID, entityType, entityID *string
		action                          string
		payload                         []byte
	)
	err := row.Scan(
		&e.ID, &projectID, &e.ActorID, &e.ActorName, &action,
		&entityType, &entityID, &e.Description, &payload, &e.OccurredAt,
	)
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	if projectID != nil {
		e.ProjectID = *projectID
	}
	if entityType != nil {
		e.EntityType = domain.EntityType(*entityType)
	}
	if entityID != nil {
		e.EntityID = *entityID
	}
	e.Action = domain.ActivityAction(action)
	e.OccurredAt = e.OccurredAt.UTC()

	e.Payload, err = domain.DecodePayload(e.Action, payload)
	if err != nil {
		return domain.ActivityEvent{}, err
	}
	return e, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

