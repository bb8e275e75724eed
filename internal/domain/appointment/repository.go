package appointment

import (
	"context"

	"github.com/navalhaclub/booking-api/internal/models"
)

// RecheckFunc roda dentro da transação de criação, com os bloqueios
// e agendamentos ativos do dia já travados. Retornar erro aborta a
// inserção: é o ponto único de decisão contra corridas de reserva.
type RecheckFunc func(blocks []models.BlockedSlot, active []models.Appointment) error

type Repository interface {
	// -------- Configuração de agenda --------
	GetWorkDay(
		ctx context.Context,
		weekday int,
	) (*models.WorkDay, error)

	GetScheduleSettings(
		ctx context.Context,
	) (*models.ScheduleSettings, error)

	// -------- Serviços --------
	GetActiveServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Cliente --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
	) (*models.Client, error)

	// -------- Disponibilidade (leituras do dia) --------
	ListBlockedSlots(
		ctx context.Context,
		date string,
	) ([]models.BlockedSlot, error)

	ListActiveAppointments(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (create / re-check) --------
	CreateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
		recheck RecheckFunc,
	) error

	// -------- Appointment (state change / listagem) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByPublicCode(
		ctx context.Context,
		code string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByMonth(
		ctx context.Context,
		year int,
		month int,
	) ([]models.Appointment, error)

	ListAppointmentsByPhone(
		ctx context.Context,
		phone string,
	) ([]models.Appointment, error)
}
