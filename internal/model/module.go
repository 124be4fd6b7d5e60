package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleType distinguishes diploma from masters modules.
type ModuleType string

const (
	ModuleTypeDiploma ModuleType = "diploma"
	ModuleTypeMasters ModuleType = "masters"
)

// Module is a top-level program of study; classes hang off a module.
type Module struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Type        ModuleType `json:"type"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Subheader   string     `json:"subheader"`
	Img         string     `json:"img"`
	StarRating  float64    `json:"starRating"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ModuleRequest is the payload for creating or updating a module.
type ModuleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=diploma masters"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
	Subheader   string   `json:"subheader" binding:"required"`
	Img         string   `json:"img" binding:"required"`
	StarRating  *float64 `json:"starRating" binding:"required,gte=0,lte=5"`
	Author      string   `json:"author" binding:"required"`
	Category    string   `json:"category" binding:"required"`
}
