package models

import "time"

// ScheduleSettings é linha única: granularidade de geração de slots
// e antecedência mínima para reservas no mesmo dia.
type ScheduleSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	IntervalMinutes   int `gorm:"default:30" json:"interval_minutes"`
	MinAdvanceMinutes int `gorm:"default:60" json:"min_advance_minutes"`

	UpdatedAt time.Time `json:"updated_at"`
}
