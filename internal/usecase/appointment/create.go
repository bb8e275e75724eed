package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/cache"
	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
	"github.com/navalhaclub/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceIDs []uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validação de entrada
	// --------------------------------------------------
	phone, ok := validators.NormalizePhone(in.ClientPhone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMins, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("service_required")
	}

	// --------------------------------------------------
	// 2. Serviços (duração viva + preço snapshot)
	// --------------------------------------------------
	services, err := uc.repo.GetActiveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := sumDuration(services)

	// --------------------------------------------------
	// 3. Antecedência mínima
	// --------------------------------------------------
	settings, err := uc.repo.GetScheduleSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if date.Format("2006-01-02") < now.Format("2006-01-02") {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if date.Format("2006-01-02") == now.Format("2006-01-02") {
		nowMins := now.Hour()*60 + now.Minute()
		if startMins <= nowMins+settings.MinAdvanceMinutes {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 4. Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, in.ClientName, phone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Montagem do agendamento
	// --------------------------------------------------
	wd, err := uc.repo.GetWorkDay(ctx, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		PublicCode: uuid.NewString(),
		ClientID:   client.ID,
		Date:       in.Date,
		Time:       schedule.FormatClock(startMins),
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}
	for _, s := range services {
		ap.TotalPrice += s.Price
		ap.Items = append(ap.Items, models.AppointmentService{
			ServiceID:      s.ID,
			PriceAtBooking: s.Price,
		})
	}

	// --------------------------------------------------
	// 6. Re-check autoritativo dentro da transação
	//
	// As leituras de disponibilidade que o cliente viu já
	// podem estar velhas. Com as linhas do dia travadas,
	// o motor roda de novo e o horário escolhido só entra
	// se ainda estiver na lista ofertável.
	// --------------------------------------------------
	recheck := func(blocks []models.BlockedSlot, active []models.Appointment) error {
		req, err := buildCandidateRequest(date, duration, timezone.Now(), blocks, active)
		if err != nil {
			return err
		}

		times, err := schedule.ComputeAvailability(toScheduleDay(wd), toScheduleConfig(settings), req)
		if err != nil {
			return err
		}

		for _, t := range times {
			if t == ap.Time {
				return nil
			}
		}
		return httperr.ErrBusiness("slot_unavailable")
	}

	if err := uc.repo.CreateAppointmentChecked(ctx, ap, recheck); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	// --------------------------------------------------
	// 7. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}
