package database

import (
	"log"
	"os"
	"piecon/backend/internal/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Use(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Use installs the given connection as the global handle and runs
// migrations against it. Split out of Connect so tests can point the
// same migration path at an in-memory database.
func Use(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Convention{},
		&models.Pie{},
		&models.Game{},
	); err != nil {
		return err
	}
	DB = db
	return nil
}
