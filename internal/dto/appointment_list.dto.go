package dto

type AppointmentListDTO struct {
	ID         uint   `json:"id"`
	PublicCode string `json:"public_code"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	Services    []string `json:"services"`
	DurationMin int      `json:"duration_min"`
	TotalPrice  float64  `json:"total_price"`
}
