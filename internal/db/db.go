package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberrock/booking-api/internal/config"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

// slotIndexSQL backs the exact-start race: at most one occupying appointment
// per barber and start instant.
var slotIndexSQL = fmt.Sprintf(`
	CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON appointments (barber_id, start_time)
	WHERE status IN ('%s', '%s', '%s')
`, domain.SlotUniqueIndex, domain.StatusRequested, domain.StatusConfirmed, domain.StatusInProgress)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormLog := logger.Default.LogMode(logger.Warn)
	if cfg.IsDevelopment() {
		gormLog = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormLog,
		NowFunc: func() time.Time {
			return time.Now().In(cfg.Location())
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// Migrate creates the schema once. There is no migration history to replay.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.BarberProfile{},
		&models.Service{},
		&models.Product{},
		&models.Package{},
		&models.Appointment{},
		&models.AppointmentAlert{},
		&models.Survey{},
		&models.Testimonial{},
		&models.GalleryImage{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(slotIndexSQL).Error; err != nil {
		return fmt.Errorf("create slot index: %w", err)
	}
	return nil
}
