package models

import "time"

// User is the identity record. RoleHint mirrors the role chosen at sign-up and
// is only consulted when no profile row exists yet.
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Provider     string `gorm:"size:20;default:'password'" json:"provider"`
	RoleHint     string `gorm:"size:20" json:"role_hint"`

	FullName      string `gorm:"size:100" json:"full_name"`
	Phone         string `gorm:"size:20" json:"phone"`
	CompanyName   string `gorm:"size:150" json:"company_name"`
	LicenseNumber string `gorm:"size:50" json:"license_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
