package model

// Role determines which management routes and operations a user may access.
type Role string

const (
	// RoleViewer may only view the admin dashboard.
	RoleViewer Role = "viewer"

	// RoleEditor may manage content (notes, papers, gallery, notices).
	RoleEditor Role = "editor"

	// RoleAdmin may additionally manage users, batches, sections, and
	// categories, including destructive deletes.
	RoleAdmin Role = "admin"
)

// roleRank orders roles for minimum-role checks. Higher rank implies every
// capability of the ranks below it.
var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the capabilities of min.
// Unknown roles never satisfy any minimum.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	mr, ok := roleRank[min]
	if !ok {
		return false
	}
	return rr >= mr
}

// AllRoles lists every assignable role, lowest capability first.
var AllRoles = []Role{RoleViewer, RoleEditor, RoleAdmin}

// NavSection identifies one entry of the management navigation menu.
type NavSection string

const (
	NavDashboard NavSection = "dashboard"
	NavBatches   NavSection = "batches"
	NavSections  NavSection = "sections"
	NavNotes     NavSection = "notes"
	NavPapers    NavSection = "papers"
	NavGallery   NavSection = "gallery"
	NavNotices   NavSection = "notices"
	NavUsers     NavSection = "users"
)

// navMinRole declares the minimum role required to see each navigation entry.
// Because roles are totally ordered, each role's visible set is a superset of
// every lower role's set.
var navMinRole = []struct {
	Section NavSection
	Min     Role
}{
	{NavDashboard, RoleViewer},
	{NavBatches, RoleEditor},
	{NavSections, RoleEditor},
	{NavNotes, RoleEditor},
	{NavPapers, RoleEditor},
	{NavGallery, RoleEditor},
	{NavNotices, RoleEditor},
	{NavUsers, RoleAdmin},
}

// NavSectionsFor returns the navigation sections visible to a role, in menu
// order. This feeds the client menu; enforcement happens per-route.
func NavSectionsFor(role Role) []NavSection {
	sections := make([]NavSection, 0, len(navMinRole))
	for _, entry := range navMinRole {
		if role.AtLeast(entry.Min) {
			sections = append(sections, entry.Section)
		}
	}
	return sections
}
