package models

import "time"

// Den is a topic community that users post in and follow. AuthorID records
// the creator for attribution; it also gates update and delete.
type Den struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Den) TableName() string {
	return "dens"
}

// OwnerID returns the user that may mutate this den.
func (d *Den) OwnerID() uint {
	return d.AuthorID
}
