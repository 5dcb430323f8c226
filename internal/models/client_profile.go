package models

import "time"

type ClientProfile struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	UserID    string  `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	FullName  string  `gorm:"size:100;not null" json:"full_name"`
	Email     string  `gorm:"size:100" json:"email"`
	Phone     *string `gorm:"size:20" json:"phone"`
	AvatarURL *string `gorm:"size:500" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
