package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint    `gorm:"index;not null" json:"project_id"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ContractorID uint       `gorm:"index;not null" json:"contractor_id"`
	Contractor   Contractor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Amount      *int   `json:"amount"`
	Timeline    string `gorm:"size:100" json:"timeline"`
	Description string `gorm:"type:text" json:"description"`

	Details datatypes.JSON `gorm:"type:jsonb" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
