package selector

//go:generate go tool github.com/dmarkham/enumer -type=Role -trimprefix=Role -transform=upper -json -text

// Role is the staffing role of a team member
type Role uint8

const (
	RoleUnknown Role = iota
	RoleLead
	RoleSupport
)

// AssignRoles labels a selected team in draft order: the first req.Lead
// picks lead, everyone after them supports.
func AssignRoles(team []Candidate, req Requirement) []TeamMember {
	members := make([]TeamMember, 0, len(team))
	for i, c := range team {
		role := RoleSupport
		if i < req.Lead {
			role = RoleLead
		}
		members = append(members, TeamMember{Candidate: c, Role: role})
	}
	return members
}
