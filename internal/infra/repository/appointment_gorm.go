package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Configuração de agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkDay(
	ctx context.Context,
	weekday int,
) (*models.WorkDay, error) {

	var wd models.WorkDay
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&wd).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &wd, nil
}

func (r *AppointmentGormRepository) GetScheduleSettings(
	ctx context.Context,
) (*models.ScheduleSettings, error) {

	var s models.ScheduleSettings
	if err := r.db.WithContext(ctx).First(&s).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// shop nunca salvou settings: defaults do produto
			return &models.ScheduleSettings{
				IntervalMinutes:   30,
				MinAdvanceMinutes: 60,
			}, nil
		}
		return nil, err
	}

	return &s, nil
}

// --------------------------------------------------
// Serviços
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = true", ids).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Disponibilidade (leituras do dia)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockedSlots(
	ctx context.Context,
	date string,
) ([]models.BlockedSlot, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *AppointmentGormRepository) ListActiveAppointments(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Items.Service").
		Where("date = ? AND status <> ?", date, "cancelled").
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (create com re-check autoritativo)
// --------------------------------------------------

// CreateAppointmentChecked trava os agendamentos ativos do dia,
// relê os bloqueios e só insere se o recheck aprovar. Decisão
// única do lado do servidor: o cliente nunca ganha corrida aqui.
func (r *AppointmentGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	recheck domain.RecheckFunc,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var active []models.Appointment
		if err := tx.
			Preload("Items.Service").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ? AND status <> ?", ap.Date, "cancelled").
			Order("time ASC").
			Find(&active).Error; err != nil {
			return err
		}

		var blocks []models.BlockedSlot
		if err := tx.
			Where("date = ?", ap.Date).
			Find(&blocks).Error; err != nil {
			return err
		}

		if err := recheck(blocks, active); err != nil {
			return err
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change / listagem)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByPublicCode(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Where("public_code = ?", code).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Where("date = ?", date).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Where("date LIKE ?", prefix+"%").
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByPhone(
	ctx context.Context,
	phone string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Where("clients.phone = ?", phone).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
