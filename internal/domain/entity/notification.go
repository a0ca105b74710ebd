package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a user-scoped portal notification
type Notification struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsRead    bool       `gorm:"not null;default:false;index" json:"is_read"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
