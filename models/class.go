package models

type Class struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:150;not null" json:"title"`
	TeacherID uint   `gorm:"index;not null" json:"teacher_id"`
}

func (Class) TableName() string {
	return "classes"
}
