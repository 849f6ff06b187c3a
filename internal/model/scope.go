package model

import "tracker-api/pkg/permission"

// Scope is the authenticated caller carried in the request context.
type Scope struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Role     permission.Role `json:"-"`
	RawRole  string          `json:"role"`
	JTI      string          `json:"jti"`
}

// RoleString exposes the issued role string to permission.ResolveRole.
func (s Scope) RoleString() (string, bool) {
	return s.RawRole, s.RawRole != ""
}

// Permissions returns the capability set of the caller's role.
func (s Scope) Permissions() permission.Set {
	return permission.Derive(s.Role)
}

func (s Scope) IsAdmin() bool {
	return s.Role.IsAdmin()
}

func (s Scope) Can(p permission.Permission) bool {
	return s.Permissions().Has(p)
}

// Principal converts the scope into the display-level identity.
func (s Scope) Principal() permission.Principal {
	return permission.Principal{
		Role:        s.Role,
		RawRole:     s.RawRole,
		DisplayName: s.Name,
		Username:    s.Username,
	}
}
