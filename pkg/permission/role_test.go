package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "admin", in: "admin", want: RoleAdmin},
		{name: "administrador", in: "administrador", want: RoleAdmin},
		{name: "upper case admin", in: "ADMIN", want: RoleAdmin},
		{name: "mixed case administrador", in: "Administrador", want: RoleAdmin},
		{name: "editor", in: "editor", want: RoleEditor},
		{name: "supervisor", in: "Supervisor", want: RoleSupervisor},
		{name: "padded supervisor is unknown", in: "  Supervisor ", want: RoleUnknown},
		{name: "padded admin is unknown", in: " admin ", want: RoleUnknown},
		{name: "long s supervisor is unknown", in: "ſupervisor", want: RoleUnknown},
		{name: "dotted capital I admin is unknown", in: "ADMİN", want: RoleUnknown},
		{name: "usuario", in: "usuario", want: RoleUsuario},
		{name: "empty is default tier", in: "", want: RoleUsuario},
		{name: "blank is unknown", in: "   ", want: RoleUnknown},
		{name: "typo is unknown", in: "admn", want: RoleUnknown},
		{name: "display only role is unknown", in: "visor", want: RoleUnknown},
		{name: "monitor is unknown", in: "monitor", want: RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestParseKnownRole(t *testing.T) {
	r, ok := ParseKnownRole("EDITOR")
	assert.True(t, ok)
	assert.Equal(t, RoleEditor, r)

	_, ok = ParseKnownRole("")
	assert.False(t, ok)

	_, ok = ParseKnownRole("root")
	assert.False(t, ok)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "editor", RoleEditor.String())
	assert.Equal(t, "supervisor", RoleSupervisor.String())
	assert.Equal(t, "usuario", RoleUsuario.String())
	assert.Equal(t, "unknown", RoleUnknown.String())
	assert.Equal(t, RoleAdmin, ParseRole(NameAdministrador))
}

func TestTierPredicates_CaseInsensitive(t *testing.T) {
	assert.True(t, IsAdmin("ADMIN"))
	assert.True(t, IsAdmin("admin"))
	assert.True(t, IsAdmin("AdMiNiStRaDoR"))
	assert.False(t, IsAdmin("editor"))

	assert.True(t, IsEditor("Editor"))
	assert.True(t, IsEditor("admin"))
	assert.False(t, IsEditor("supervisor"))

	assert.True(t, IsSupervisor("SUPERVISOR"))
	assert.True(t, IsSupervisor("editor"))
	assert.False(t, IsSupervisor("usuario"))
	assert.False(t, IsSupervisor(""))

	assert.False(t, IsAdmin(" admin "))
	assert.False(t, IsSupervisor("ſupervisor"))
}

func TestTierPredicates_Monotonic(t *testing.T) {
	inputs := []string{
		"", "usuario", "supervisor", "editor", "admin", "administrador",
		"ADMIN", "Editor", "visor", "monitor", "root", "admin ", "🙂",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if IsAdmin(in) {
				assert.True(t, IsEditor(in), "admin must imply editor")
			}
			if IsEditor(in) {
				assert.True(t, IsSupervisor(in), "editor must imply supervisor")
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.IsValid(), r.String())
	}
	assert.False(t, RoleUnknown.IsValid())
	assert.False(t, Role(99).IsValid())
}

func TestRole_AtLeast_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		role Role
	}{
		{name: "above admin", role: Role(99)},
		{name: "negative", role: Role(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.role.IsAdmin())
			assert.False(t, tt.role.IsEditor())
			assert.False(t, tt.role.IsSupervisor())
			assert.Equal(t, Derive(RoleUnknown), Derive(tt.role))
		})
	}
}
