// Package authorization defines the closed set of user roles and their
// capabilities. Role checks go through typed helpers rather than string
// comparisons scattered across handlers.
package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps a stored role string to a UserRole, defaulting to
// the least-privileged role for anything unrecognized.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Capability is a named permission grantable to a role.
type Capability string

const (
	CapManageAnyShelter  Capability = "shelter:manage:any"
	CapManageOwnShelter  Capability = "shelter:manage:own"
	CapSubscribe         Capability = "subscription:create"
	CapViewOwnProfile    Capability = "profile:view:own"
)

var roleCapabilities = map[UserRole][]Capability{
	RoleUser:  {CapManageOwnShelter, CapSubscribe, CapViewOwnProfile},
	RoleAdmin: {CapManageAnyShelter, CapManageOwnShelter, CapSubscribe, CapViewOwnProfile},
}

// Can reports whether the role holds the given capability.
func (r UserRole) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// CanManageShelter reports whether the role may modify a shelter it does
// not necessarily own. Owners are always allowed regardless of role.
func CanManageShelter(role UserRole, isOwner bool) bool {
	if isOwner {
		return role.Can(CapManageOwnShelter)
	}
	return role.Can(CapManageAnyShelter)
}
