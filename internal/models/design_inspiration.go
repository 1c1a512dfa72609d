package models

import (
	"time"

	"github.com/lib/pq"
)

// A DesignInspiration row is written as a side effect of a successful
// AI generation call; it is never created directly by the client.
type DesignInspiration struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Room  string `gorm:"size:50;not null" json:"room"`
	Style string `gorm:"size:50;not null" json:"style"`

	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"size:512" json:"image_url"`
	Prompt      string         `gorm:"type:text" json:"prompt"`
	Tips        pq.StringArray `gorm:"type:text[]" json:"tips"`

	CreatedAt time.Time `json:"created_at"`
}
