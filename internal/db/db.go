package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.WorkDay{},
		&models.BlockedSlot{},
		&models.ScheduleSettings{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seed(db, cfg)

	return db
}

// seed deixa o sistema utilizável na primeira subida: um admin,
// settings padrão e um expediente de semana comercial.
func seed(db *gorm.DB, cfg *config.Config) {

	var users int64
	db.Model(&models.User{}).Count(&users)
	if users == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		db.Create(&models.User{
			Name:         "Admin",
			Email:        cfg.AdminEmail,
			PasswordHash: string(hash),
			Role:         "owner",
		})
		log.Printf("seeded admin user %s", cfg.AdminEmail)
	}

	var settings int64
	db.Model(&models.ScheduleSettings{}).Count(&settings)
	if settings == 0 {
		db.Create(&models.ScheduleSettings{
			IntervalMinutes:   30,
			MinAdvanceMinutes: 60,
		})
	}

	var days int64
	db.Model(&models.WorkDay{}).Count(&days)
	if days == 0 {
		var toCreate []models.WorkDay
		for weekday := 0; weekday <= 6; weekday++ {
			wd := models.WorkDay{
				Weekday:        weekday,
				Open:           weekday != 0, // domingo fechado
				MorningStart:   "09:00",
				MorningEnd:     "12:00",
				MorningOpen:    true,
				AfternoonStart: "13:00",
				AfternoonEnd:   "19:00",
				AfternoonOpen:  true,
			}
			if weekday == 6 {
				wd.AfternoonEnd = "18:00"
			}
			toCreate = append(toCreate, wd)
		}
		db.Create(&toCreate)
	}
}
