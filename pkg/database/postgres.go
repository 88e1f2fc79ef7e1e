package database

import (
	"log"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	SeedRoomTypes(db)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoomType{},
		&models.RateRule{},
		&models.GuestProfile{},
		&models.VerificationCode{},
		&models.Booking{},
		&models.SalesSummary{},
	)
}

// SeedRoomTypes inserts the default room categories when absent. Room types
// are reference data owned by inventory management; the booking core only
// reads them.
func SeedRoomTypes(db *gorm.DB) {
	defaults := []models.RoomType{
		{Name: "Deluxe King", TotalRooms: 10, BaseRate: decimal.NewFromInt(9200), Sleeps: 2},
		{Name: "Twin Suite", TotalRooms: 8, BaseRate: decimal.NewFromInt(8400), Sleeps: 3},
		{Name: "Ocean View Loft", TotalRooms: 4, BaseRate: decimal.NewFromInt(12500), Sleeps: 4},
		{Name: "Garden Retreat", TotalRooms: 6, BaseRate: decimal.NewFromInt(7800), Sleeps: 2},
	}

	for _, roomType := range defaults {
		var count int64
		db.Model(&models.RoomType{}).Where("name = ?", roomType.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&roomType).Error; err != nil {
				log.Printf("failed to seed room type %q: %v", roomType.Name, err)
			}
		}
	}
}
