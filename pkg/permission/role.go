package permission

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is an access tier. Tiers are ordered: a higher tier holds every
// capability of the tiers below it.
type Role int

const (
	// RoleUnknown is any role string that is not recognized. It grants nothing
	// beyond the base tier.
	RoleUnknown Role = iota
	RoleUsuario
	RoleSupervisor
	RoleEditor
	RoleAdmin
)

// Canonical role names as stored and issued in tokens.
const (
	NameUsuario       = "usuario"
	NameSupervisor    = "supervisor"
	NameEditor        = "editor"
	NameAdmin         = "admin"
	NameAdministrador = "administrador"
	nameUnknown       = "unknown"
)

// DefaultRole is assumed when no role is present at all.
const DefaultRole = RoleUsuario

var roleByName = map[string]Role{
	NameUsuario:       RoleUsuario,
	NameSupervisor:    RoleSupervisor,
	NameEditor:        RoleEditor,
	NameAdmin:         RoleAdmin,
	NameAdministrador: RoleAdmin,
}

// ParseRole maps a role string to a Role. Comparison ignores case only;
// padded or look-alike spellings are not recognized. An empty string is the
// default tier; any other unrecognized value is RoleUnknown.
func ParseRole(s string) Role {
	name := normalize(s)
	if name == "" {
		return DefaultRole
	}
	if r, ok := roleByName[name]; ok {
		return r
	}
	return RoleUnknown
}

// ParseKnownRole is ParseRole for write paths: it reports false when the
// string does not name one of the known tiers.
func ParseKnownRole(s string) (Role, bool) {
	r, ok := roleByName[normalize(s)]
	return r, ok
}

// normalize lower-cases s. Casers keep state, so each call gets its own.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// String returns the canonical name of the role.
func (r Role) String() string {
	switch r {
	case RoleUsuario:
		return NameUsuario
	case RoleSupervisor:
		return NameSupervisor
	case RoleEditor:
		return NameEditor
	case RoleAdmin:
		return NameAdmin
	default:
		return nameUnknown
	}
}

// IsValid reports whether r is one of the known tiers.
func (r Role) IsValid() bool {
	return r >= RoleUsuario && r <= RoleAdmin
}

// AtLeast reports whether r is a known tier ranked at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r >= min
}

func (r Role) IsAdmin() bool      { return r.AtLeast(RoleAdmin) }
func (r Role) IsEditor() bool     { return r.AtLeast(RoleEditor) }
func (r Role) IsSupervisor() bool { return r.AtLeast(RoleSupervisor) }

// Roles returns the known tiers from lowest to highest.
func Roles() []Role {
	return []Role{RoleUsuario, RoleSupervisor, RoleEditor, RoleAdmin}
}

// IsAdmin reports whether role names the admin tier ("admin" or "administrador").
func IsAdmin(role string) bool { return ParseRole(role).IsAdmin() }

// IsEditor reports whether role is editor or above.
func IsEditor(role string) bool { return ParseRole(role).IsEditor() }

// IsSupervisor reports whether role is supervisor or above.
func IsSupervisor(role string) bool { return ParseRole(role).IsSupervisor() }
