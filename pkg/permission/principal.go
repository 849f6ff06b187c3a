package permission

import "context"

// Source supplies the raw role string of the current principal.
type Source interface {
	RoleString() (string, bool)
}

// StringSource adapts a plain role string to Source.
type StringSource string

func (s StringSource) RoleString() (string, bool) {
	return string(s), s != ""
}

// ResolveRole reads the role from src. A nil source, a missing value or an
// empty string resolve to DefaultRole.
func ResolveRole(src Source) Role {
	if src == nil {
		return DefaultRole
	}
	raw, ok := src.RoleString()
	if !ok {
		return DefaultRole
	}
	return ParseRole(raw)
}

// Principal is the authenticated identity as seen by permission checks.
// DisplayName and Username are carried for presentation only.
type Principal struct {
	Role        Role
	RawRole     string
	DisplayName string
	Username    string
}

// NewPrincipal builds a Principal from the role string issued at login.
func NewPrincipal(role, displayName, username string) Principal {
	return Principal{
		Role:        ParseRole(role),
		RawRole:     role,
		DisplayName: displayName,
		Username:    username,
	}
}

func (p Principal) RoleString() (string, bool) {
	return p.RawRole, p.RawRole != ""
}

// Permissions derives the principal's capability set.
func (p Principal) Permissions() Set {
	return Derive(p.Role)
}

type principalCtxKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// FromContext returns the principal stored in ctx. When none is present the
// zero principal at DefaultRole is returned with ok == false.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	if !ok {
		return Principal{Role: DefaultRole}, false
	}
	return p, true
}
