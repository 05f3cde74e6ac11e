package models

import "time"

// Post is an entry published inside a den. Title and body are mutable by the
// author only; deleting the parent den removes the post.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DenID     uint      `gorm:"not null;index" json:"den_id"`
	Den       Den       `gorm:"foreignKey:DenID;constraint:OnDelete:CASCADE" json:"den,omitempty"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title     string    `gorm:"size:300;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// OwnerID returns the user that may mutate this post.
func (p *Post) OwnerID() uint {
	return p.AuthorID
}
