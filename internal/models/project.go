package models

import "time"

type Project struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	ClientID    string  `gorm:"size:36;index;not null" json:"client_id"`
	ProID       *string `gorm:"size:36;index" json:"pro_id"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`

	Status   string  `gorm:"size:20;default:'planned'" json:"status"`
	Progress int     `gorm:"default:0" json:"progress"`
	Budget   float64 `gorm:"default:0" json:"budget"`
	Spent    float64 `gorm:"default:0" json:"spent"`

	Address          *string    `gorm:"size:255" json:"address"`
	StartDate        *time.Time `json:"start_date"`
	EstimatedEndDate *time.Time `json:"estimated_end_date"`

	Phases   []ProjectPhase   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Photos   []ProjectPhoto   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Costs    []ProjectCost    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Requests []ProjectRequest `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectPhase struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string     `gorm:"size:36;index;not null" json:"project_id"`
	Name      string     `gorm:"size:150;not null" json:"name"`
	Status    string     `gorm:"size:20;default:'pending'" json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	SortOrder int        `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

type ProjectPhoto struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string  `gorm:"size:36;index;not null" json:"project_id"`
	URL       string  `gorm:"size:500;not null" json:"url"`
	Caption   *string `gorm:"size:255" json:"caption"`
	Phase     *string `gorm:"size:150" json:"phase"`

	CreatedAt time.Time `json:"created_at"`
}

type ProjectCost struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string    `gorm:"size:36;index;not null" json:"project_id"`
	Label     string    `gorm:"size:150;not null" json:"label"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:20;not null" json:"category"`
	Date      time.Time `json:"date"`
	Paid      bool      `gorm:"default:false" json:"paid"`

	CreatedAt time.Time `json:"created_at"`
}
