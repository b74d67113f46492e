package models_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/zaywreck/warehouse_backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. The
// DSN is named after the test (shared cache, so every pooled connection
// sees the same database) and therefore isolated from other tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{}, &models.Region{}, &models.City{}, &models.Warehouse{},
		&models.InventoryRecord{}, &models.YearlyAverageConsumption{},
		&models.User{}, &models.Role{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	logg := logrus.New()
	logg.SetLevel(logrus.PanicLevel)
	return logg
}
