package model

import "time"

// Lesson represents a scheduled lesson of a course.
type Lesson struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	Course    Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	StartsAt  time.Time `json:"starts_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
