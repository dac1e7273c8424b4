package entity

// Role is the permission level stored on a profile.
type Role string

const (
	RoleUser Role = "user"
	// RoleEditor may create and update catalog content.
	RoleEditor Role = "editor"
	// RoleAdmin may also delete catalog content.
	RoleAdmin Role = "admin"
)

// roleRank orders roles by privilege. Unknown roles rank zero.
var roleRank = map[Role]int{
	RoleUser:   1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return roleRank[r] > 0
}

// CanEdit reports whether the role may create or update catalog content.
func (r Role) CanEdit() bool {
	return roleRank[r] >= roleRank[RoleEditor]
}

// IsAdmin reports whether the role may delete catalog content.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// HighestRole picks the most privileged known role from token claims.
// It falls back to RoleUser when none is recognised.
func HighestRole(claims []string) Role {
	best := RoleUser
	for _, s := range claims {
		if role := Role(s); roleRank[role] > roleRank[best] {
			best = role
		}
	}

	return best
}
