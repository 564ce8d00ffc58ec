package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`
	Species string    `gorm:"type:varchar(50);not null" json:"species"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
