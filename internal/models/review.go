package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ContractorID uint       `gorm:"index;not null" json:"contractor_id"`
	Contractor   Contractor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Optional link to the project the work was done for.
	ProjectID *uint `gorm:"index" json:"project_id"`

	Rating int    `gorm:"not null" json:"rating"`
	Review string `gorm:"type:text" json:"review"`

	CreatedAt time.Time `json:"created_at"`
}
