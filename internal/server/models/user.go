package models

// User is a single directory record. Records are created at seed time and
// never mutated or deleted afterwards.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Roles a seeded record may carry. Distinct from the client's session roles.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)
