//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/harborview/hotel-backend/pkg/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "hotel_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	dropTables()

	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}
	database.SeedRoomTypes(testDB)

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	for _, table := range []string{
		"bookings", "verification_codes", "guest_profiles",
		"rate_rules", "room_types", "sales_summaries",
	} {
		testDB.Exec("DROP TABLE IF EXISTS " + table)
	}
}

func cleanTables() {
	testDB.Exec("DELETE FROM bookings")
	testDB.Exec("DELETE FROM verification_codes")
	testDB.Exec("DELETE FROM guest_profiles")
	testDB.Exec("DELETE FROM sales_summaries")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
