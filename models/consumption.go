package models

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/zaywreck/warehouse_backend/utils"
	"gorm.io/gorm"
)

// YearlyAverageConsumption stores the average usage of a product for one
// year. At most one row exists per product and year.
type YearlyAverageConsumption struct {
	ID           int             `gorm:"primary_key" json:"id"`
	ProductCode  string          `gorm:"size:50;index:idx_consumption_product_year,unique" json:"product_code" binding:"required"`
	AverageUsage decimal.Decimal `gorm:"type:decimal(18,4)" json:"average_usage"`
	Year         int             `gorm:"index:idx_consumption_product_year,unique" json:"year" binding:"required"`
}

func (YearlyAverageConsumption) TableName() string {
	return "yearly_average_consumption"
}

type YearlyAverageConsumptionUpdate struct {
	AverageUsage decimal.Decimal `json:"average_usage"`
	Year         int             `json:"year" binding:"required"`
}

func GetYearlyAverageConsumptions(ctx context.Context, db *gorm.DB) ([]YearlyAverageConsumption, error) {
	var averages []YearlyAverageConsumption
	err := db.WithContext(ctx).Find(&averages).Error
	return averages, err
}

func GetYearlyAverageConsumption(ctx context.Context, db *gorm.DB, id int) (YearlyAverageConsumption, error) {
	var average YearlyAverageConsumption
	err := db.WithContext(ctx).Where("id = ?", id).First(&average).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return average, utils.ErrorRecordNotFound
	}
	return average, err
}

func CreateYearlyAverageConsumption(ctx context.Context, db *gorm.DB, average *YearlyAverageConsumption) error {
	var existing YearlyAverageConsumption
	err := db.WithContext(ctx).
		Where("product_code = ? AND year = ?", average.ProductCode, average.Year).
		First(&existing).Error
	if err == nil {
		return utils.ErrDuplicateRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(average).Error
}

func UpdateYearlyAverageConsumption(ctx context.Context, db *gorm.DB, id int, update YearlyAverageConsumptionUpdate) (YearlyAverageConsumption, error) {
	average, err := GetYearlyAverageConsumption(ctx, db, id)
	if err != nil {
		return average, err
	}
	err = db.WithContext(ctx).Model(&average).Updates(map[string]interface{}{
		"average_usage": update.AverageUsage,
		"year":          update.Year,
	}).Error
	if err != nil {
		return average, err
	}
	average.AverageUsage = update.AverageUsage
	average.Year = update.Year
	return average, nil
}

func DeleteYearlyAverageConsumption(ctx context.Context, db *gorm.DB, id int) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&YearlyAverageConsumption{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}
