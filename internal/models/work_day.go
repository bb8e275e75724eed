package models

import "time"

// WorkDay guarda o expediente de um dia da semana: até dois turnos
// (manhã/tarde), cada um com seu próprio liga/desliga. Horários em
// "HH:MM"; a validação acontece no motor de agenda, não aqui.
type WorkDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int  `gorm:"uniqueIndex;not null" json:"weekday"` // 0 = domingo
	Open    bool `json:"open"`

	MorningStart string `gorm:"size:5" json:"morning_start"`
	MorningEnd   string `gorm:"size:5" json:"morning_end"`
	MorningOpen  bool   `json:"morning_open"`

	AfternoonStart string `gorm:"size:5" json:"afternoon_start"`
	AfternoonEnd   string `gorm:"size:5" json:"afternoon_end"`
	AfternoonOpen  bool   `json:"afternoon_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
