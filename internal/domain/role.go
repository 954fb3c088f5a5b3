package domain

// Role distinguishes the two UI access levels. This is presentation-layer
// authorization only, not a security boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// AuthState is the role-gate snapshot, persisted under its own namespace.
type AuthState struct {
	Role Role `json:"role"`
}
