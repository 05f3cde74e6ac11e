package models

import "time"

// Like records that a user liked a post. The (PostID, UserID) pair is unique;
// the database index is what makes the like toggle race-safe.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "likes"
}
