package model

import (
	"time"

	"github.com/google/uuid"
)

// Batch groups students enrolled together.
type Batch struct {
	ID        uuid.UUID `json:"id"`
	BatchName string    `json:"batchName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BatchRequest is the payload for creating or updating a batch.
type BatchRequest struct {
	BatchName string `json:"batchName" binding:"required,max=20"`
}
