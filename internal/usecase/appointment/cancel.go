package appointment

import (
	"context"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/cache"
	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit, cache: cache}
}

// Execute cancela pelo id interno (painel do admin).
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return uc.cancel(ctx, ap, &userID)
}

// ExecuteByCode cancela pelo código público (fluxo do cliente).
func (uc *CancelAppointment) ExecuteByCode(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByPublicCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return uc.cancel(ctx, ap, nil)
}

func (uc *CancelAppointment) cancel(
	ctx context.Context,
	ap *models.Appointment,
	userID *uint,
) (*models.Appointment, error) {

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// o horário volta a ficar ofertável
	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
