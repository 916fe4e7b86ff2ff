package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
)

// UserIDFromCtx returns the authenticated user id attached by
// AuthnMiddleware, or "" for unauthenticated requests.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
