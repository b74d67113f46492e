package models

import (
	"context"
	"errors"

	"github.com/zaywreck/warehouse_backend/utils"
	"gorm.io/gorm"
)

type Region struct {
	RegionCode string `gorm:"size:50;primary_key" json:"region_code" binding:"required"`
	RegionName string `gorm:"size:100" json:"region_name" binding:"required"`
	Cities     []City `gorm:"foreignKey:RegionCode;references:RegionCode" json:"cities,omitempty"`
}

type RegionUpdate struct {
	RegionName string `json:"region_name" binding:"required"`
}

func GetRegions(ctx context.Context, db *gorm.DB) ([]Region, error) {
	var regions []Region
	err := db.WithContext(ctx).Find(&regions).Error
	return regions, err
}

func GetRegion(ctx context.Context, db *gorm.DB, regionCode string) (Region, error) {
	var region Region
	err := db.WithContext(ctx).Where("region_code = ?", regionCode).First(&region).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return region, utils.ErrorRecordNotFound
	}
	return region, err
}

func CreateRegion(ctx context.Context, db *gorm.DB, region *Region) error {
	var existing Region
	err := db.WithContext(ctx).Where("region_code = ?", region.RegionCode).First(&existing).Error
	if err == nil {
		return utils.ErrDuplicateRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(region).Error
}

func UpdateRegion(ctx context.Context, db *gorm.DB, regionCode string, update RegionUpdate) (Region, error) {
	region, err := GetRegion(ctx, db, regionCode)
	if err != nil {
		return region, err
	}
	err = db.WithContext(ctx).Model(&region).Update("region_name", update.RegionName).Error
	if err != nil {
		return region, err
	}
	region.RegionName = update.RegionName
	return region, nil
}

func DeleteRegion(ctx context.Context, db *gorm.DB, regionCode string) error {
	result := db.WithContext(ctx).Where("region_code = ?", regionCode).Delete(&Region{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}
