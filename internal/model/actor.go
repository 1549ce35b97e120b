package model

// Role is a capability granted to a user through the user_roles table.
// It is resolved once per request and carried on the Actor instead of being
// re-derived wherever an authorization decision is needed.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleNone  Role = ""
)

// IsAdmin reports whether the role permits course mutations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Actor is the authenticated principal behind a request: the user identity
// taken from the verified token plus the role grant resolved for it.
type Actor struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
