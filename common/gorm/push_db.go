package gorm

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sunthewhat/quick-cert-api/type/shared/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Push_db creates or updates the certificates table.
func Push_db(dsn string) error {
	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dialector := postgres.New(
		postgres.Config{
			DSN: dsn,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		return err
	}
	defer Close(db)

	if err := Migrate(db); err != nil {
		return err
	}

	slog.Info("Database migration completed successfully")
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		new(model.Certificate),
	)
}
