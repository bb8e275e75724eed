package appointment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/models"
)

// Repositório em memória para os testes de use case.
type mockRepo struct {
	workDays map[int]*models.WorkDay
	settings *models.ScheduleSettings
	services map[uint]models.Service

	clients      map[string]*models.Client
	blocks       []models.BlockedSlot
	appointments []models.Appointment

	nextID        uint
	recheckCalled bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		workDays: map[int]*models.WorkDay{},
		settings: &models.ScheduleSettings{
			IntervalMinutes:   30,
			MinAdvanceMinutes: 60,
		},
		services: map[uint]models.Service{},
		clients:  map[string]*models.Client{},
	}
}

func (m *mockRepo) GetWorkDay(_ context.Context, weekday int) (*models.WorkDay, error) {
	return m.workDays[weekday], nil
}

func (m *mockRepo) GetScheduleSettings(_ context.Context) (*models.ScheduleSettings, error) {
	return m.settings, nil
}

func (m *mockRepo) GetActiveServices(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := m.services[id]; ok && s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRepo) GetOrCreateClient(_ context.Context, name, phone string) (*models.Client, error) {
	if c, ok := m.clients[phone]; ok {
		return c, nil
	}

	m.nextID++
	c := &models.Client{ID: m.nextID, Name: name, Phone: phone}
	m.clients[phone] = c
	return c, nil
}

func (m *mockRepo) ListBlockedSlots(_ context.Context, date string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range m.blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepo) ListActiveAppointments(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.Date == date && ap.Status != "cancelled" {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	recheck domain.RecheckFunc,
) error {

	m.recheckCalled = true

	blocks, _ := m.ListBlockedSlots(ctx, ap.Date)
	active, _ := m.ListActiveAppointments(ctx, ap.Date)

	if err := recheck(blocks, active); err != nil {
		return err
	}

	m.nextID++
	ap.ID = m.nextID
	m.appointments = append(m.appointments, *ap)
	return nil
}

func (m *mockRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			return &m.appointments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) GetAppointmentByPublicCode(_ context.Context, code string) (*models.Appointment, error) {
	for i := range m.appointments {
		if m.appointments[i].PublicCode == code {
			return &m.appointments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == ap.ID {
			m.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRepo) ListAppointmentsByDate(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAppointmentsByMonth(_ context.Context, year, month int) ([]models.Appointment, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var out []models.Appointment
	for _, ap := range m.appointments {
		if strings.HasPrefix(ap.Date, prefix) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAppointmentsByPhone(_ context.Context, phone string) ([]models.Appointment, error) {
	client, ok := m.clients[phone]
	if !ok {
		return nil, nil
	}

	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.ClientID == client.ID {
			out = append(out, ap)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func (m *mockRepo) addService(id uint, name string, durationMin int, price float64) {
	m.services[id] = models.Service{
		ID:          id,
		Name:        name,
		DurationMin: durationMin,
		Price:       price,
		Active:      true,
	}
}

func (m *mockRepo) addWorkDay(weekday int, morningStart, morningEnd string) {
	m.workDays[weekday] = &models.WorkDay{
		Weekday:      weekday,
		Open:         true,
		MorningStart: morningStart,
		MorningEnd:   morningEnd,
		MorningOpen:  true,
	}
}

func (m *mockRepo) addAppointment(date, timeStr string, durationMin int, status string) {
	m.nextID++
	m.appointments = append(m.appointments, models.Appointment{
		ID:     m.nextID,
		Date:   date,
		Time:   timeStr,
		Status: status,
		Items: []models.AppointmentService{
			{Service: models.Service{DurationMin: durationMin}},
		},
	})
}
