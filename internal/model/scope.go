package model

// Scope identifies the caller of a usecase.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const RoleSystem = "system"

// SystemScope is used by background jobs.
func SystemScope() Scope {
	return Scope{UserID: RoleSystem, Role: RoleSystem}
}
