package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A Model is the essential data points for catalog records,
// indicating when a record was created and last updated.
type Model struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exists asserts whether the record has been stored.
func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }

// BeforeCreate assigns m an ID if it has none.
//
// BeforeCreate implements GORM's BeforeCreate hook.
func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
