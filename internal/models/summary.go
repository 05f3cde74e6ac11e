package models

import "time"

// PostSummary is the flattened read record returned by listing queries.
// Likes is computed at query time; zero-like posts carry 0 rather than being
// dropped from the listing.
type PostSummary struct {
	PostID    uint      `gorm:"column:post_id" json:"post_id"`
	DenID     uint      `gorm:"column:den_id" json:"den_id"`
	DenName   string    `gorm:"column:den_name" json:"den_name"`
	AuthorID  uint      `gorm:"column:author_id" json:"author_id"`
	Username  string    `gorm:"column:username" json:"username"`
	Title     string    `gorm:"column:title" json:"title"`
	Body      string    `gorm:"column:body" json:"body"`
	Likes     int64     `gorm:"column:likes" json:"likes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// CommentSummary is the flattened read record for comment listings.
type CommentSummary struct {
	CommentID uint      `gorm:"column:comment_id" json:"comment_id"`
	PostID    uint      `gorm:"column:post_id" json:"post_id"`
	AuthorID  uint      `gorm:"column:author_id" json:"author_id"`
	Username  string    `gorm:"column:username" json:"username"`
	Body      string    `gorm:"column:body" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// DenSummary is the flattened read record for den listings, annotated with
// the creator's username.
type DenSummary struct {
	DenID       uint      `gorm:"column:den_id" json:"den_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	AuthorID    uint      `gorm:"column:author_id" json:"author_id"`
	Username    string    `gorm:"column:username" json:"username"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// SiteStats carries the counters shown on the anonymous landing page.
type SiteStats struct {
	Users int64 `gorm:"column:users" json:"users"`
	Posts int64 `gorm:"column:posts" json:"posts"`
}
