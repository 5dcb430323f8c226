package models

import "time"

type ProjectRequest struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string  `gorm:"size:36;index;not null" json:"project_id"`
	ClientID  string  `gorm:"size:36;index;not null" json:"client_id"`
	ProID     string  `gorm:"size:36;index:idx_request_pro_status;not null" json:"pro_id"`
	Status    string  `gorm:"size:20;default:'pending';index:idx_request_pro_status" json:"status"`
	Message   *string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
