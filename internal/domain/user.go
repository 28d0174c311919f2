package domain

import "time"

// Role differentiates end-users from support agents.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
)

// IsValid reports whether the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAgent
}

// DefaultAvatar is assigned to accounts provisioned without one.
const DefaultAvatar = "https://picsum.photos/100/100?random=default"

// User models an account able to log in: an end-user who files tickets,
// or an agent scoped to exactly one category.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Domain       *Category `json:"domain"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAgent reports whether the user is a support agent.
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
