package models

import "time"

// UserRole values stored in the role column. The role is recorded and
// returned to clients but does not gate any endpoint.
type UserRole string

const (
	RoleFarmer   UserRole = "farmer"
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	Role           UserRole  `gorm:"size:20;not null" json:"role"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// UserCreate is the payload for POST /users/ and POST /register.
// The password policy check lives in the auth handler, not here,
// because the rule is configurable.
type UserCreate struct {
	Name     string `json:"name" validate:"required,min=2,max=100,alpha_space"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=farmer admin operator"`
}

// UserUpdate is the whole-record replace payload for PUT /users/{id}.
// Passwords are not changed through this path.
type UserUpdate struct {
	Name  string `json:"name" validate:"required,min=2,max=100,alpha_space"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=farmer admin operator"`
}
