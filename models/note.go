package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultContent is what gets stored when a note is written with an empty
// body. A note body is never persisted blank.
const DefaultContent = "Nothing"

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	InHistory bool      `gorm:"not null;default:false" json:"in_history"`
	EditDate  time.Time `gorm:"not null;index" json:"edit_date"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that assigns an id when none is set
func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (n *Note) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Note) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}
