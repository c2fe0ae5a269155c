package models

// Fixed role names seeded at startup
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// SeededRoleNames is the full set of roles the application knows about.
// Seeding is idempotent, so listing a name here is safe across restarts.
var SeededRoleNames = []string{RoleAdmin, RoleUser}

// Role represents a named permission group referenced by users
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Authority returns the granted-authority string the authorization
// middleware compares against. It is derived from the role name only.
func (r Role) Authority() string {
	return r.Name
}

// Authorities maps a role set to its granted-authority strings
func Authorities(roles []Role) []string {
	authorities := make([]string, len(roles))
	for i, role := range roles {
		authorities[i] = role.Authority()
	}
	return authorities
}
