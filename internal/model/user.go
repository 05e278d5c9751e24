package model

import "time"

// User represents a student, instructor or admin account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string `json:"first_name" gorm:"size:100;not null"`
	LastName     string `json:"last_name" gorm:"size:100;not null"`

	RoleID uint `json:"role_id" gorm:"not null;index"`
	Role   Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`

	// GroupID is set for students only.
	GroupID *uint  `json:"group_id,omitempty" gorm:"index"`
	Group   *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`

	// RefreshTokenHash stores the bcrypt hash of the single active refresh
	// token. Nil until first login and after logout; overwritten on every
	// login and refresh so older refresh tokens stop verifying.
	RefreshTokenHash *string `json:"-" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
