package askademy

import "strings"

// Role is an account's platform-wide role.
type Role string

const (
	// RoleStudent can ask questions and answer within enrolled courses.
	RoleStudent Role = "STUDENT"
	// RoleProfessor can verify answers, post announcements, and manage courses.
	RoleProfessor Role = "PROFESSOR"
	// RoleAdmin can view aggregate platform stats via the admin views.
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is one of the predefined platform roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	default:
		return false
	}
}

// AllRoles returns every predefined role.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleProfessor, RoleAdmin}
}

// ParseRole safely parses a string into a Role. The backend emits roles in
// upper case; lookup is case-insensitive to be safe.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	return role, role.IsValid()
}
