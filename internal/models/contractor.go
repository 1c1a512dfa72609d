package models

import (
	"time"

	"github.com/lib/pq"
)

// Rating and ReviewCount are derived: recomputed from reviews on every
// new review, never written directly by the API.
type Contractor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Specialty   string `gorm:"size:50;not null" json:"specialty"`

	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties"`
	Location    string         `gorm:"size:100;not null" json:"location"`

	ProfileImage string `gorm:"size:255" json:"profile_image"`
	Email        string `gorm:"size:100;not null" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
