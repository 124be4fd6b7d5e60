package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseType distinguishes free from paid courses.
type CourseType string

const (
	CourseTypeFree    CourseType = "free"
	CourseTypePremium CourseType = "premium"
)

// Course is a purchasable unit of learning content.
type Course struct {
	ID            uuid.UUID  `json:"id"`
	CourseName    string     `json:"courseName"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Type          CourseType `json:"type"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Img           string     `json:"img"`
	VideoID       string     `json:"videoId"`
	CourseContain string     `json:"courseContain"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CourseRequest is the payload for creating or updating a course.
// Optional fields fall back to the same defaults the store applies.
type CourseRequest struct {
	CourseName    string   `json:"courseName" binding:"required,max=50"`
	Description   string   `json:"description" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Type          string   `json:"type" binding:"required,oneof=free premium"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	Img           string   `json:"img"`
	VideoID       string   `json:"videoId"`
	CourseContain string   `json:"courseContain"`
}

// ApplyDefaults fills optional course fields the way the original schema did.
func (r *CourseRequest) ApplyDefaults() {
	if r.Author == "" {
		r.Author = "Unknown Author"
	}
	if r.Category == "" {
		r.Category = "General"
	}
}
