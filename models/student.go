package models

// Student shares its primary key with the owning User row.
type Student struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ClassID       *uint  `gorm:"index" json:"class_id"`
	Level         int    `gorm:"not null;default:1" json:"level"`
	TotalPoints   int    `gorm:"not null;default:0" json:"total_points"`
	LevelProgress int    `gorm:"not null;default:0" json:"level_progress"`
	User          User   `gorm:"foreignKey:ID;references:ID" json:"user,omitempty"`
	Class         *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

type Teacher struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Subject *string `gorm:"size:100" json:"subject,omitempty"`
	School  *string `gorm:"size:150" json:"school,omitempty"`
	User    User    `gorm:"foreignKey:ID;references:ID" json:"user,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
