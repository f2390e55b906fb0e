package domain

// Role is a demo persona. Roles gate which operations the HTTP surface
// allows; the data store itself is role-agnostic.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleFleetManager Role = "fleet-manager"
	RoleMember       Role = "member"
	RoleGuest        Role = "guest"
)

// DemoUser is an entry in the seeded user directory. The directory is
// read-only: it exists so the demo can show "who is who" per role.
type DemoUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
