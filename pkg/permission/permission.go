package permission

import "sort"

// Permission names a capability that gates an action.
type Permission string

const (
	CreateProjects  Permission = "createProjects"
	EditProjects    Permission = "editProjects"
	DeleteProjects  Permission = "deleteProjects"
	ViewAllProjects Permission = "viewAllProjects"
	ManageUsers     Permission = "manageUsers"
	ManageSettings  Permission = "manageSettings"
	ViewReports     Permission = "viewReports"
	ExportData      Permission = "exportData"
)

// requirement is the minimum tier for each capability.
var requirement = map[Permission]Role{
	CreateProjects:  RoleAdmin,
	DeleteProjects:  RoleAdmin,
	ManageUsers:     RoleAdmin,
	ManageSettings:  RoleAdmin,
	EditProjects:    RoleEditor,
	ExportData:      RoleEditor,
	ViewAllProjects: RoleSupervisor,
	ViewReports:     RoleSupervisor,
}

// Permissions returns every capability name in a stable order.
func Permissions() []Permission {
	return []Permission{
		CreateProjects, EditProjects, DeleteProjects, ViewAllProjects,
		ManageUsers, ManageSettings, ViewReports, ExportData,
	}
}

// MinRole returns the lowest tier granted p. ok is false for unknown names.
func MinRole(p Permission) (role Role, ok bool) {
	role, ok = requirement[p]
	return
}

// Set is the capability set derived from a role.
type Set struct {
	CreateProjects  bool `json:"createProjects"`
	EditProjects    bool `json:"editProjects"`
	DeleteProjects  bool `json:"deleteProjects"`
	ViewAllProjects bool `json:"viewAllProjects"`
	ManageUsers     bool `json:"manageUsers"`
	ManageSettings  bool `json:"manageSettings"`
	ViewReports     bool `json:"viewReports"`
	ExportData      bool `json:"exportData"`
}

// Derive computes the capability set for role.
func Derive(role Role) Set {
	var s Set
	for p, min := range requirement {
		if role.AtLeast(min) {
			*s.field(p) = true
		}
	}
	return s
}

// DeriveFromString is Derive(ParseRole(role)).
func DeriveFromString(role string) Set {
	return Derive(ParseRole(role))
}

// field returns a pointer to the flag backing p, or nil for unknown names.
func (s *Set) field(p Permission) *bool {
	switch p {
	case CreateProjects:
		return &s.CreateProjects
	case EditProjects:
		return &s.EditProjects
	case DeleteProjects:
		return &s.DeleteProjects
	case ViewAllProjects:
		return &s.ViewAllProjects
	case ManageUsers:
		return &s.ManageUsers
	case ManageSettings:
		return &s.ManageSettings
	case ViewReports:
		return &s.ViewReports
	case ExportData:
		return &s.ExportData
	}
	return nil
}

// Has reports whether p is granted. Unknown names are never granted.
func (s Set) Has(p Permission) bool {
	f := s.field(p)
	return f != nil && *f
}

// HasAll reports whether every name in ps is granted.
func (s Set) HasAll(ps ...Permission) bool {
	for _, p := range ps {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one name in ps is granted.
func (s Set) HasAny(ps ...Permission) bool {
	for _, p := range ps {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Granted returns the granted capability names, sorted.
func (s Set) Granted() []Permission {
	out := make([]Permission, 0, len(requirement))
	for _, p := range Permissions() {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasPermission is the name-based lookup used by callers holding plain strings.
func HasPermission(s Set, name string) bool {
	return s.Has(Permission(name))
}
