package models

import "time"

// Comment is a reply attached to a post. Any authenticated user may comment;
// only the author may delete.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}

// OwnerID returns the user that may mutate this comment.
func (c *Comment) OwnerID() uint {
	return c.AuthorID
}
