package models

import "time"

// Follow records that a user follows a den. The (DenID, UserID) pair is
// unique; followed dens feed the personalized home listing.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DenID     uint      `gorm:"not null;uniqueIndex:idx_follows_den_user" json:"den_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_den_user" json:"user_id"`
	Den       Den       `gorm:"foreignKey:DenID;constraint:OnDelete:CASCADE" json:"den,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
