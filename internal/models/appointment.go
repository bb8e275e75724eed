package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público (uuid) usado pelo cliente para consultar/cancelar
	PublicCode string `gorm:"size:36;uniqueIndex;not null" json:"public_code"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Date string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`        // HH:MM

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Preço é snapshot no momento da reserva. Duração NÃO é:
	// sempre recalculada a partir da duração atual dos serviços
	// (ver TotalDurationMin), então editar a duração de um serviço
	// muda o espaço ocupado por reservas antigas na agenda.
	TotalPrice float64 `json:"total_price"`

	Items []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	PriceAtBooking float64 `json:"price_at_booking"`
}

// TotalDurationMin soma a duração ATUAL dos serviços do agendamento.
// Requer Items com Service pré-carregado.
func (a *Appointment) TotalDurationMin() int {
	total := 0
	for _, it := range a.Items {
		total += it.Service.DurationMin
	}
	return total
}
