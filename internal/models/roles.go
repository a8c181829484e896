package models

// Roles are a flat two-value check, not a permission system.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
