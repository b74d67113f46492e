package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/zaywreck/warehouse_backend/utils"
	"gorm.io/gorm"
)

type Warehouse struct {
	WarehouseCode string `gorm:"size:50;primary_key" json:"warehouse_code" binding:"required"`
	WarehouseName string `gorm:"size:100" json:"warehouse_name" binding:"required"`
	CityCode      string `gorm:"size:50" json:"city_code" binding:"required"`
}

type WarehouseUpdate struct {
	WarehouseName string `json:"warehouse_name" binding:"required"`
	CityCode      string `json:"city_code" binding:"required"`
}

func GetWarehouses(ctx context.Context, db *gorm.DB) ([]Warehouse, error) {
	var warehouses []Warehouse
	err := db.WithContext(ctx).Find(&warehouses).Error
	return warehouses, err
}

func GetWarehouse(ctx context.Context, db *gorm.DB, warehouseCode string) (Warehouse, error) {
	var warehouse Warehouse
	err := db.WithContext(ctx).Where("warehouse_code = ?", warehouseCode).First(&warehouse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return warehouse, utils.ErrorRecordNotFound
	}
	return warehouse, err
}

func CreateWarehouse(ctx context.Context, db *gorm.DB, warehouse *Warehouse) error {
	var existing Warehouse
	err := db.WithContext(ctx).Where("warehouse_code = ?", warehouse.WarehouseCode).First(&existing).Error
	if err == nil {
		return utils.ErrDuplicateRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(warehouse).Error
}

func UpdateWarehouse(ctx context.Context, db *gorm.DB, warehouseCode string, update WarehouseUpdate) (Warehouse, error) {
	warehouse, err := GetWarehouse(ctx, db, warehouseCode)
	if err != nil {
		return warehouse, err
	}
	err = db.WithContext(ctx).Model(&warehouse).Updates(map[string]interface{}{
		"warehouse_name": update.WarehouseName,
		"city_code":      update.CityCode,
	}).Error
	if err != nil {
		return warehouse, err
	}
	warehouse.WarehouseName = update.WarehouseName
	warehouse.CityCode = update.CityCode
	return warehouse, nil
}

// DeleteWarehouse removes the warehouse together with its inventory rows.
// Inventory references the warehouse by code, so the fact rows go first.
func DeleteWarehouse(ctx context.Context, db *gorm.DB, warehouseCode string) error {
	warehouse, err := GetWarehouse(ctx, db, warehouseCode)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("warehouse_code = ?", warehouseCode).Delete(&InventoryRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&warehouse).Error
	})
}

// FindOrCreateWarehouse looks the warehouse up by code and creates it with
// a synthesized name, linked to the given city, when absent.
func FindOrCreateWarehouse(ctx context.Context, tx *gorm.DB, warehouseCode, cityCode string) (Warehouse, bool, error) {
	var warehouse Warehouse
	err := tx.WithContext(ctx).Where("warehouse_code = ?", warehouseCode).First(&warehouse).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return warehouse, false, fmt.Errorf("error finding warehouse: %v", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		warehouse = Warehouse{
			WarehouseCode: warehouseCode,
			WarehouseName: fmt.Sprintf("Warehouse %s", warehouseCode),
			CityCode:      cityCode,
		}
		if err := tx.WithContext(ctx).Create(&warehouse).Error; err != nil {
			return warehouse, false, fmt.Errorf("could not create warehouse: %v", err)
		}
		return warehouse, true, nil
	}

	return warehouse, false, nil
}
