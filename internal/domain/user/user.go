package user

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Profile is the stored onboarding profile of a user. Skills are kept as a
// JSON array.
type Profile struct {
	UserID          string         `gorm:"primaryKey;size:64;column:user_id"`
	Email           string         `gorm:"column:email"`
	EducationLevel  string         `gorm:"not null;column:education_level"`
	FinancialStatus string         `gorm:"not null;column:financial_status"`
	Skills          datatypes.JSON `gorm:"column:skills"`
	Location        string         `gorm:"column:location"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Profile) TableName() string { return "profiles" }
