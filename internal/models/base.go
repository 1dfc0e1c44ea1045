package models

import "time"

// Base is the base model for all content entities. IDs are auto-incrementing
// integers, matching the relational identity exposed through the admin routes.
type Base struct {
	ID        uint      `json:"id"       gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

// MediaType classifies an attachment on a blog post.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaAudio   MediaType = "audio"
	MediaPDF     MediaType = "pdf"
	MediaYouTube MediaType = "youtube"
)
