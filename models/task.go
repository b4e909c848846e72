package models

import "time"

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TeacherID   uint       `gorm:"index;not null" json:"teacher_id"`
	ClassID     uint       `gorm:"index;not null" json:"class_id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	MaxPoints   int        `gorm:"not null" json:"max_points"`
	DueDate     *time.Time `json:"due_date"`
	Link        *string    `gorm:"size:500" json:"link"`
	CreatedAt   time.Time  `json:"created_at"`

	Class       Class            `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Submissions []TaskSubmission `gorm:"foreignKey:TaskID" json:"submissions,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
