package models

import "time"

// Role is a user's authorization role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// UserStatus is a user account's activation state.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Valid reports whether the status is one of the known variants.
func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive:
		return true
	}
	return false
}

// User represents an account that can authenticate against the API.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Phone        string     `json:"phone" gorm:"type:varchar(20)"`
	Email        string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password     string     `json:"-" gorm:"type:varchar(255);not null"` // bcrypt digest, never serialized
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;default:user"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:active"`
	PhotoProfile string     `json:"photo_profile" gorm:"type:varchar(500)"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserInfo is the public projection of a user returned by auth endpoints.
type UserInfo struct {
	ID     uint       `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`
}

// Info returns the public projection of the user.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}
