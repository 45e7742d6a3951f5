package httpx

import "context"

type ctxKey string

const (
	CtxKeyPrincipalID ctxKey = "principal_id"
	CtxKeyEmail       ctxKey = "email"
	CtxKeyClaims      ctxKey = "claims" // full tokenx.Claims when needed
)

// PrincipalIDFromCtx returns the authenticated principal id, or "" if
// the request did not pass AuthnMiddleware.
func PrincipalIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyPrincipalID).(string); ok {
		return v
	}
	return ""
}

// EmailFromCtx returns the authenticated principal's email, or "".
func EmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
