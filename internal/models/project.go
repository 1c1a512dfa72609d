package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Type        string `gorm:"size:50;not null" json:"type"`
	Description string `gorm:"type:text;not null" json:"description"`

	Status string `gorm:"size:20;default:'planning'" json:"status"`

	EstimatedCostMin *int `json:"estimated_cost_min"`
	EstimatedCostMax *int `json:"estimated_cost_max"`
	ActualCost       *int `json:"actual_cost"`

	Timeline      string `gorm:"size:100" json:"timeline"`
	Location      string `gorm:"size:100" json:"location"`
	SquareFootage *int   `json:"square_footage"`

	PhotoURLs pq.StringArray `gorm:"type:text[]" json:"photo_urls"`
	Details   datatypes.JSON `gorm:"type:jsonb" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
