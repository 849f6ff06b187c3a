package scope

import (
	"context"

	"tracker-api/internal/model"
	"tracker-api/pkg/permission"
)

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext stores the scope and its permission principal.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	ctx = context.WithValue(ctx, ScopeCtxKey{}, sc)
	return permission.WithPrincipal(ctx, sc.Principal())
}

// GetScopeFromContext gets the scope from context
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// GetUserIDFromContext returns the caller's user ID.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.UserID == "" {
		return "", false
	}
	return sc.UserID, true
}
