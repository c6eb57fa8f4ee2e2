package httpx

import (
	"context"

	"github.com/kindling-app/kindling/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyClaims ctxKey = "claims"
)

func contextWithAuth(ctx context.Context, claims jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
	return context.WithValue(ctx, CtxKeyClaims, claims)
}

// UserIDFromContext returns the authenticated user's id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}

// ClaimsFromContext returns the verified token claims, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
