package domain

// Role constants define the allowed operator roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRoles returns the set of valid roles.
func ValidRoles() []string {
	return []string{RoleAdmin, RoleManager, RoleStaff}
}

// IsValidRole checks whether the given string is a valid role.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles() {
		if r == role {
			return true
		}
	}
	return false
}
