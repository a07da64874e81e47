package constants

const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleStaff   = "Staff"
)

var ValidRoles = []string{RoleAdmin, RoleTeacher, RoleStaff}

// IsValidRole reports whether role is one of ValidRoles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}
