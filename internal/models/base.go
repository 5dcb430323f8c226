package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a row a uuid primary key when the caller did not set one.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error { assignID(&u.ID); return nil }
func (p *ClientProfile) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (p *ProProfile) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (p *ProPortfolioItem) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (p *Project) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (p *ProjectPhase) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (p *ProjectPhoto) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (c *ProjectCost) BeforeCreate(*gorm.DB) error { assignID(&c.ID); return nil }
func (r *ProjectRequest) BeforeCreate(*gorm.DB) error { assignID(&r.ID); return nil }
func (a *AuditLog) BeforeCreate(*gorm.DB) error { assignID(&a.ID); return nil }
