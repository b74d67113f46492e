package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// InventoryRecord is the fact row produced by ingestion. The timestamp is
// the moment the row was ingested, never a value from the source file.
type InventoryRecord struct {
	InventoryCode string    `gorm:"size:50;primary_key" json:"inventory_code"`
	ProductCode   string    `gorm:"size:50;index" json:"product_code"`
	WarehouseCode string    `gorm:"size:50;index" json:"warehouse_code"`
	Quantity      int       `json:"quantity"`
	Timestamp     time.Time `json:"timestamp"`
}

func (InventoryRecord) TableName() string {
	return "inventory"
}

// JoinedInventoryRecord is an inventory row decorated with the warehouse
// and product display names.
type JoinedInventoryRecord struct {
	InventoryCode string    `json:"inventory_code"`
	ProductCode   string    `json:"product_code"`
	WarehouseCode string    `json:"warehouse_code"`
	Quantity      int       `json:"quantity"`
	Timestamp     time.Time `json:"timestamp"`
	WarehouseName string    `json:"warehouse_name"`
	ProductName   string    `json:"product_name"`
}

func GetWarehouseInventory(ctx context.Context, db *gorm.DB, warehouseCode string) ([]InventoryRecord, error) {
	var records []InventoryRecord
	err := db.WithContext(ctx).Where("warehouse_code = ?", warehouseCode).Find(&records).Error
	return records, err
}

func GetJoinedInventory(ctx context.Context, db *gorm.DB, warehouseCode string) ([]JoinedInventoryRecord, error) {
	var records []JoinedInventoryRecord
	err := db.WithContext(ctx).Model(&InventoryRecord{}).
		Select("inventory.inventory_code, inventory.product_code, inventory.warehouse_code, inventory.quantity, inventory.timestamp, warehouses.warehouse_name, products.product_name").
		Joins("JOIN warehouses ON inventory.warehouse_code = warehouses.warehouse_code").
		Joins("JOIN products ON inventory.product_code = products.product_code").
		Where("inventory.warehouse_code = ?", warehouseCode).
		Scan(&records).Error
	return records, err
}
