package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DTO is the outward representation of a user. There is deliberately no
// password field here.
type DTO struct {
	ID        int64     `json:"id" xml:"id"`
	Username  string    `json:"username" xml:"username"`
	Role      string    `json:"role" xml:"role"`
	CreatedAt time.Time `json:"createdAt" xml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" xml:"updatedAt"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token" xml:"token"`
	User  DTO    `json:"user" xml:"user"`
}

type LoginRequest struct {
	Username string `json:"username" xml:"username"`
	Password string `json:"password" xml:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type RegisterRequest struct {
	Username string `json:"username" xml:"username"`
	Password string `json:"password" xml:"password"`
	Role     string `json:"role" xml:"role"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be 3-50 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 255).Error("password must be at least 6 characters"),
		),
		validation.Field(&r.Role,
			validation.In("VISITOR", "EDITOR", "ADMIN").Error("role must be one of VISITOR, EDITOR, ADMIN"),
		),
	)
}

// CreateRequest is the admin-provisioning variant of registration. Both
// protocol surfaces funnel into it.
type CreateRequest struct {
	Username string `json:"username" xml:"username"`
	Password string `json:"password" xml:"password"`
	Role     string `json:"role" xml:"role"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be 3-50 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 255).Error("password must be at least 6 characters"),
		),
		validation.Field(&r.Role,
			validation.In("VISITOR", "EDITOR", "ADMIN").Error("role must be one of VISITOR, EDITOR, ADMIN"),
		),
	)
}

// UpdateRequest carries a partial update; empty fields are left untouched.
type UpdateRequest struct {
	Username string `json:"username" xml:"username"`
	Password string `json:"password" xml:"password"`
	Role     string `json:"role" xml:"role"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != "", validation.Length(3, 50).Error("username must be 3-50 characters")),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != "", validation.Length(6, 255).Error("password must be at least 6 characters")),
		),
		validation.Field(&r.Role,
			validation.In("VISITOR", "EDITOR", "ADMIN").Error("role must be one of VISITOR, EDITOR, ADMIN"),
		),
	)
}
