package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

// Discard drops every event. Used when the store has no relational
// backend to write audit rows into.
type Discard struct{}

func (Discard) Log(*uint, string, string, *uint, any) error { return nil }
