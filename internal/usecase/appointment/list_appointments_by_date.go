package appointment

import (
	"context"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/dto"
	"github.com/navalhaclub/booking-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(apps), nil
}

func toListDTOs(apps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(apps))

	for i := range apps {
		ap := &apps[i]

		names := make([]string, 0, len(ap.Items))
		for _, it := range ap.Items {
			names = append(names, it.Service.Name)
		}

		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			PublicCode:  ap.PublicCode,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ClientPhone: ap.Client.Phone,
			Services:    names,
			DurationMin: ap.TotalDurationMin(),
			TotalPrice:  ap.TotalPrice,
		})
	}

	return out
}
