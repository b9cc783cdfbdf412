package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserLocation struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"index;not null" json:"email"`
	LocationID string    `gorm:"not null" json:"locationId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (l *UserLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
