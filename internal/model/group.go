package model

import "time"

// Group represents a student group within a faculty.
type Group struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	FacultyID uint      `json:"faculty_id" gorm:"not null;index"`
	Faculty   Faculty   `json:"faculty,omitempty" gorm:"foreignKey:FacultyID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
