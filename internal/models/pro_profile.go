package models

import "time"

type ProProfile struct {
	ID            string   `gorm:"primaryKey;size:36" json:"id"`
	UserID        string   `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	FullName      string   `gorm:"size:100;not null" json:"full_name"`
	Email         string   `gorm:"size:100" json:"email"`
	Phone         *string  `gorm:"size:20" json:"phone"`
	CompanyName   string   `gorm:"size:150" json:"company_name"`
	LicenseNumber *string  `gorm:"size:50" json:"license_number"`
	Specialties   []string `gorm:"serializer:json;type:text" json:"specialties"`
	Description   *string  `gorm:"type:text" json:"description"`
	AvatarURL     *string  `gorm:"size:500" json:"avatar_url"`

	Verified        bool     `gorm:"default:false" json:"verified"`
	Rating          float64  `gorm:"default:0" json:"rating"`
	ReviewCount     int      `gorm:"default:0" json:"review_count"`
	YearsExperience int      `gorm:"default:0" json:"years_experience"`
	ServiceArea     *string  `gorm:"size:150" json:"service_area"`
	HourlyRate      *float64 `json:"hourly_rate"`

	OnboardingComplete bool `gorm:"default:false;index" json:"onboarding_complete"`

	Portfolio []ProPortfolioItem `gorm:"foreignKey:ProID;references:UserID;constraint:OnDelete:CASCADE;" json:"portfolio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProPortfolioItem struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	ProID    string  `gorm:"size:36;index;not null" json:"pro_id"`
	URL      string  `gorm:"size:500;not null" json:"url"`
	Caption  *string `gorm:"size:255" json:"caption"`
	Category *string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
}
