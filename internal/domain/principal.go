package domain

// Roles recognised by the dashboard. The lattice is strict:
// operator < manager < admin.
const (
	RoleOperator = "operator"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Principal is the authenticated caller as carried by the access token.
// Authorization is always derived from the embedded role, not a fresh store
// lookup, so a role change takes effect at the next login.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleOperator, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}
