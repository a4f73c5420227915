package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleEditor, false},
		{RoleViewer, RoleAdmin, false},
		{RoleEditor, RoleViewer, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleEditor, true},
		{RoleAdmin, RoleAdmin, true},
		{Role("superuser"), RoleViewer, false},
		{RoleAdmin, Role("superuser"), false},
	}

	for _, c := range cases {
		if got := c.role.AtLeast(c.min); got != c.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", c.role, c.min, got, c.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range AllRoles {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "superuser", "Admin"} {
		if r.Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestNavSectionsForViewer(t *testing.T) {
	sections := NavSectionsFor(RoleViewer)
	if len(sections) != 1 || sections[0] != NavDashboard {
		t.Errorf("viewer should see dashboard only, got %v", sections)
	}
}

func TestNavSectionsForAdmin(t *testing.T) {
	sections := NavSectionsFor(RoleAdmin)
	if len(sections) != len(navMinRole) {
		t.Errorf("admin should see every section, got %v", sections)
	}

	hasUsers := false
	for _, s := range sections {
		if s == NavUsers {
			hasUsers = true
		}
	}
	if !hasUsers {
		t.Error("admin navigation missing users")
	}
}

// Higher roles must see a superset of what lower roles see.
func TestNavSectionsSuperset(t *testing.T) {
	for i := 1; i < len(AllRoles); i++ {
		lower := NavSectionsFor(AllRoles[i-1])
		higher := make(map[NavSection]bool)
		for _, s := range NavSectionsFor(AllRoles[i]) {
			higher[s] = true
		}
		for _, s := range lower {
			if !higher[s] {
				t.Errorf("%s sees %q but %s does not", AllRoles[i-1], s, AllRoles[i])
			}
		}
	}
}

func TestNavSectionsForUnknownRole(t *testing.T) {
	if sections := NavSectionsFor(Role("ghost")); len(sections) != 0 {
		t.Errorf("unknown role should see nothing, got %v", sections)
	}
}
