package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type City struct {
	CityCode   string      `gorm:"size:50;primary_key" json:"city_code" binding:"required"`
	CityName   string      `gorm:"size:100" json:"city_name" binding:"required"`
	RegionCode *string     `gorm:"size:50" json:"region_code"`
	Warehouses []Warehouse `gorm:"foreignKey:CityCode;references:CityCode" json:"warehouses,omitempty"`
}

func GetCities(ctx context.Context, db *gorm.DB) ([]City, error) {
	var cities []City
	err := db.WithContext(ctx).Find(&cities).Error
	return cities, err
}

// FindOrCreateCity looks the city up by code and creates it with a
// synthesized name when absent. Auto-created cities have no region; only
// explicit administration assigns one.
func FindOrCreateCity(ctx context.Context, tx *gorm.DB, cityCode string) (City, bool, error) {
	var city City
	err := tx.WithContext(ctx).Where("city_code = ?", cityCode).First(&city).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return city, false, fmt.Errorf("error finding city: %v", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		city = City{
			CityCode: cityCode,
			CityName: fmt.Sprintf("City %s", cityCode),
		}
		if err := tx.WithContext(ctx).Create(&city).Error; err != nil {
			return city, false, fmt.Errorf("could not create city: %v", err)
		}
		return city, true, nil
	}

	return city, false, nil
}
