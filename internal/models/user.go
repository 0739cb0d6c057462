package models

// Role values for User.Role.
const (
	RoleUser = "user"
	RoleVIP  = "vip"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "user" or "vip"
}

type AuthForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Notification mirrors the toast banner the frontend shows: one at a time,
// self-expiring, newest wins.
type Notification struct {
	Message string `json:"message"`
	Kind    string `json:"kind"` // "success" or "info"
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
