package model

import (
	"time"

	"github.com/google/uuid"
)

// Role defines a student account's access level.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Student is a platform account. PasswordHash is never serialized.
type Student struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Image        string      `json:"image,omitempty"`
	BatchID      *uuid.UUID  `json:"batch,omitempty"`
	CourseIDs    []uuid.UUID `json:"courses"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=admin teacher student"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateStudentRequest is the payload for updating an existing account.
// Password is optional: when empty the stored hash is left untouched.
type UpdateStudentRequest struct {
	Username  string      `json:"username" binding:"required,min=3,max=50"`
	Password  string      `json:"password" binding:"omitempty,min=6,max=128"`
	Role      string      `json:"role" binding:"required,oneof=admin teacher student"`
	Image     string      `json:"image"`
	BatchID   *uuid.UUID  `json:"batch"`
	CourseIDs []uuid.UUID `json:"courses"`
}
