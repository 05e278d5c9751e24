package model

import "time"

// Grade represents a mark a student received for a lesson.
type Grade struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_grade_student_lesson"`
	Student   User      `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	LessonID  uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_grade_student_lesson"`
	Lesson    Lesson    `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
	Value     int       `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
