package model

import (
	"time"

	"github.com/google/uuid"
)

// Class is a single lesson within a module.
type Class struct {
	ID          uuid.UUID `json:"id"`
	ModuleID    uuid.UUID `json:"module"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PDF         string    `json:"pdf,omitempty"`
	Video       string    `json:"video,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClassRequest is the payload for creating or updating a class.
type ClassRequest struct {
	ModuleID    uuid.UUID `json:"module" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	PDF         string    `json:"pdf"`
	Video       string    `json:"video"`
}
