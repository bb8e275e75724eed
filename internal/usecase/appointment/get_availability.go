package appointment

import (
	"context"
	"time"

	"github.com/navalhaclub/booking-api/internal/cache"
	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, cache *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	services, err := uc.repo.GetActiveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if len(services) == 0 {
		return nil, httperr.ErrBusiness("service_required")
	}

	// duração sempre a partir da duração atual dos serviços
	duration := sumDuration(services)
	dateStr := in.Date.Format("2006-01-02")

	if hit, ok := uc.cache.Get(ctx, dateStr, duration); ok {
		return hit, nil
	}

	settings, err := uc.repo.GetScheduleSettings(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.AvailabilityResult{
		Date:            dateStr,
		DurationMinutes: duration,
		Times:           []string{},
	}

	wd, err := uc.repo.GetWorkDay(ctx, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}
	if wd == nil {
		// dia sem expediente cadastrado: fechado, não erro
		return res, nil
	}

	blocks, err := uc.repo.ListBlockedSlots(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.ListActiveAppointments(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	req, err := buildCandidateRequest(in.Date, duration, timezone.Now(), blocks, active)
	if err != nil {
		return nil, err
	}

	times, err := schedule.ComputeAvailability(toScheduleDay(wd), toScheduleConfig(settings), req)
	if err != nil {
		return nil, err
	}

	res.Times = times
	uc.cache.Set(ctx, res)

	return res, nil
}

// --------------------------------------------------
// Conversão models -> motor de agenda
// --------------------------------------------------

func toScheduleDay(wd *models.WorkDay) schedule.WorkDay {
	return schedule.WorkDay{
		Weekday: wd.Weekday,
		Open:    wd.Open,
		Morning: &schedule.Shift{
			Start: wd.MorningStart,
			End:   wd.MorningEnd,
			Open:  wd.MorningOpen,
		},
		Afternoon: &schedule.Shift{
			Start: wd.AfternoonStart,
			End:   wd.AfternoonEnd,
			Open:  wd.AfternoonOpen,
		},
	}
}

func toScheduleConfig(s *models.ScheduleSettings) schedule.Config {
	return schedule.Config{
		IntervalMinutes:   s.IntervalMinutes,
		MinAdvanceMinutes: s.MinAdvanceMinutes,
	}
}

func buildCandidateRequest(
	date time.Time,
	duration int,
	now time.Time,
	blocks []models.BlockedSlot,
	active []models.Appointment,
) (schedule.CandidateRequest, error) {

	req := schedule.CandidateRequest{
		Date:            date,
		DurationMinutes: duration,
		Now:             now,
	}

	for _, b := range blocks {
		t, err := schedule.ParseClock(b.Time)
		if err != nil {
			return req, err
		}
		req.Blocks = append(req.Blocks, t)
	}

	for i := range active {
		start, err := schedule.ParseClock(active[i].Time)
		if err != nil {
			return req, err
		}
		req.Bookings = append(req.Bookings, schedule.Span{
			Start: start,
			End:   start + active[i].TotalDurationMin(),
		})
	}

	return req, nil
}

func sumDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return total
}
