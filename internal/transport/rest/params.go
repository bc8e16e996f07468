package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

const (
	dateOnly      = "2006-01-02"
	localDateTime = "2006-01-02T15:04:05"
)

// queryReader pulls typed values out of a query string and remembers the
// first malformed one.
type queryReader struct {
	q   url.Values
	err error
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{q: r.URL.Query()}
}

func (qr *queryReader) fail(field, message string) {
	if qr.err == nil {
		qr.err = domain.NewInvalidFilterError(field, message)
	}
}

// first returns the value of the first non-empty key among names.
func (qr *queryReader) first(names ...string) (string, string) {
	for _, n := range names {
		if v := strings.TrimSpace(qr.q.Get(n)); v != "" {
			return n, v
		}
	}
	return "", ""
}

func (qr *queryReader) optString(name string) *string {
	_, v := qr.first(name)
	if v == "" {
		return nil
	}
	return &v
}

func (qr *queryReader) intOr(name string, def int) int {
	_, v := qr.first(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		qr.fail(name, "must be an integer")
		return def
	}
	return n
}

func (qr *queryReader) optInt(name string) *int {
	_, v := qr.first(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		qr.fail(name, "must be an integer")
		return nil
	}
	return &n
}

func (qr *queryReader) optUUID(name string) *uuid.UUID {
	_, v := qr.first(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		qr.fail(name, "must be a UUID")
		return nil
	}
	return &id
}

// startDate reads the lower bound of a time window.
func (qr *queryReader) startDate(names ...string) *time.Time {
	name, v := qr.first(names...)
	if v == "" {
		return nil
	}
	t, _, err := parseDate(v)
	if err != nil {
		qr.fail(name, "must be an ISO 8601 timestamp or YYYY-MM-DD")
		return nil
	}
	return &t
}

// endDate reads the upper bound of a time window. A bare date covers the
// whole day.
func (qr *queryReader) endDate(names ...string) *time.Time {
	name, v := qr.first(names...)
	if v == "" {
		return nil
	}
	t, bare, err := parseDate(v)
	if err != nil {
		qr.fail(name, "must be an ISO 8601 timestamp or YYYY-MM-DD")
		return nil
	}
	if bare {
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &t
}

// parseDate accepts RFC 3339 timestamps, ISO timestamps without an offset
// (read as UTC) and bare dates, which are read as UTC midnight.
func parseDate(v string) (t time.Time, bare bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(localDateTime, v); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(dateOnly, v); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}

// optTimestamp parses an optional body timestamp. Blank means absent.
func optTimestamp(field, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, _, err := parseDate(strings.TrimSpace(v))
	if err != nil {
		return nil, domain.NewValidationError(field, "must be an ISO 8601 timestamp or YYYY-MM-DD")
	}
	return &t, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is empty")
		}
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}
