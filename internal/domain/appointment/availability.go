package appointment

import "time"

type AvailabilityInput struct {
	Date       time.Time
	ServiceIDs []uint
}

type AvailabilityResult struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Times           []string `json:"times"`
}
