package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserApproved UserStatus = "approved"
	UserRejected UserStatus = "rejected"
)

// ParseUserStatus validates an externally supplied status value against the
// closed set. Admin endpoints must never write arbitrary strings into the
// status column.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserPending, UserApproved, UserRejected:
		return UserStatus(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// User is the identity record. PasswordHash is write-only: the json:"-" tag
// keeps it out of every response body regardless of which handler marshals
// the struct.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	Weight       string      `json:"weight,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	City         string      `json:"city,omitempty"`
	Role         Role        `json:"role"`
	Status       UserStatus  `json:"status"`
	ProfileImage string      `json:"profileImage,omitempty"`
	MatchIDs     []uuid.UUID `json:"matches"`
	EventIDs     []uuid.UUID `json:"events"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
