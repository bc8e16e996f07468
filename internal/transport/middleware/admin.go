package middleware

import (
	"context"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context actor is not an
// admin, and domain.ErrUnauthorized if there is no actor at all.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
