package readstate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// EvaluateUnread reports, for each candidate, whether the user has not yet
// seen it. The read state is fetched once for the whole batch; results keep
// the candidates' order.
func (s *Service) EvaluateUnread(ctx context.Context, userID uuid.UUID, projectID string, candidates []domain.UnreadCandidate) ([]domain.UnreadResult, error) {
	var fe domain.FieldErrors
	validateOwner(&fe, userID, projectID)
	if err := fe.Err(); err != nil {
		return nil, err
	}
	if err := validateCandidates(candidates); err != nil {
		return nil, err
	}

	results := make([]domain.UnreadResult, 0, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	state, err := s.repo.GetOrCreate(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("evaluate unread: %w", err)
	}

	for _, c := range candidates {
		results = append(results, domain.UnreadResult{
			Ref:    c.Ref,
			Unread: domain.IsUnread(&state, c.Ref, c.CreatedAt, c.Ref.EntityType.Section()),
		})
	}
	return results, nil
}

// CountUnread returns how many candidates are unread.
func CountUnread(results []domain.UnreadResult) int {
	var n int
	for _, r := range results {
		if r.Unread {
			n++
		}
	}
	return n
}
