package enums

import "fmt"

// MemberRole is the platform-wide user role.
type MemberRole string

const (
	RoleSuperadmin  MemberRole = "SUPERADMIN"
	RoleAdmin       MemberRole = "ADMIN"
	RoleManager     MemberRole = "MANAGER"
	RoleDistributor MemberRole = "DISTRIBUTOR"
)

var validMemberRoles = []MemberRole{
	RoleSuperadmin,
	RoleAdmin,
	RoleManager,
	RoleDistributor,
}

// String implements fmt.Stringer.
func (r MemberRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known MemberRole.
func (r MemberRole) IsValid() bool {
	for _, candidate := range validMemberRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseMemberRole converts raw input into a MemberRole.
func ParseMemberRole(value string) (MemberRole, error) {
	for _, candidate := range validMemberRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member role %q", value)
}

// AtLeastAdmin reports whether the role carries admin-surface access.
func (r MemberRole) AtLeastAdmin() bool {
	return r == RoleSuperadmin || r == RoleAdmin
}
