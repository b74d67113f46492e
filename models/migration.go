package models

import (
	"log"

	"gorm.io/gorm"
)

func MigrateTable(db *gorm.DB) {
	err := db.AutoMigrate(
		&Product{}, &Region{}, &City{}, &Warehouse{},
		&InventoryRecord{}, &YearlyAverageConsumption{},
		&User{}, &Role{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
