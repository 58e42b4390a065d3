package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skinlab011/salon-booking/internal/config"
	"github.com/skinlab011/salon-booking/internal/models"
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
		&models.TreatmentCategory{},
		&models.Treatment{},
		&models.Booking{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The exclusion constraint is the authoritative double-booking
	// guard: no two pending/confirmed rows on the same date may hold
	// overlapping [start, start+duration) ranges. Legacy rows without
	// a stored duration count as 60 minutes, matching read-time
	// behavior.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE bookings
        ADD CONSTRAINT bookings_no_overlap
        EXCLUDE USING gist (
            booking_date WITH =,
            int4range(start_minute, start_minute + COALESCE(duration_minutes, 60)) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed'))
    `)

	return db
}
