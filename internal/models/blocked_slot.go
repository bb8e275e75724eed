package models

import "time"

// Bloqueio pontual criado pelo admin (manutenção, compromisso pessoal)
type BlockedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"size:5;not null" json:"time"`        // HH:MM
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
