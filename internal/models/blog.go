package models

import "time"

// BlogPostModel is a blog post. A post carries at most one attachment: either
// an uploaded file (FilePath) or an external YouTube link, never both.
// MediaType is derived from whichever is present.
type BlogPostModel struct {
	Base
	Title      string    `json:"title"       gorm:"not null"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	DatePosted time.Time `json:"date_posted" gorm:"index;not null"`
	MediaType  MediaType `json:"media_type"`
	FilePath   string    `json:"file_path"`
	YouTubeURL string    `json:"youtube_url" gorm:"column:youtube_url"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
