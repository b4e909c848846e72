package models

import "time"

// Badge is awarded automatically when a student reaches Level.
type Badge struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Level       int     `gorm:"uniqueIndex;not null" json:"level"`
}

func (Badge) TableName() string {
	return "badges"
}

type StudentBadge struct {
	StudentID uint      `gorm:"primaryKey" json:"student_id"`
	BadgeID   uint      `gorm:"primaryKey" json:"badge_id"`
	EarnedAt  time.Time `json:"earned_at"`

	Badge *Badge `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
}

func (StudentBadge) TableName() string {
	return "student_badges"
}

type Notification struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Message string    `gorm:"size:500;not null" json:"message"`
	SentAt  time.Time `json:"sent_at"`
	Read    bool      `gorm:"not null;default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
