package user

import "time"

// Role is the closed set of capabilities a user can hold. The three values
// form nested capability sets: ADMIN ⊃ EDITOR ⊃ VISITOR.
type Role string

const (
	RoleVisitor Role = "VISITOR"
	RoleEditor  Role = "EDITOR"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole validates a raw role string against the enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleVisitor, RoleEditor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User is the persisted credential record. PasswordHash is one-way hashed
// before persistence and never serialized outward.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DTO strips the user down to its serializable fields.
func (u *User) DTO() DTO {
	return DTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
