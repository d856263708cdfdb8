package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionUsage is one row per completion call. Only token counts are
// stored; prompt and reply text never reach the database.
type CompletionUsage struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID        string    `gorm:"type:varchar(64);index"`
	Route            string    `gorm:"type:varchar(32);not null"` // "itinerary" or "chat"
	Model            string    `gorm:"type:varchar(64);not null"`
	PromptTokens     int       `gorm:"not null"`
	CompletionTokens int       `gorm:"not null"`
	TotalTokens      int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (u *CompletionUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
