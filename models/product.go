package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zaywreck/warehouse_backend/utils"
	"gorm.io/gorm"
)

type Product struct {
	ProductCode string          `gorm:"size:50;primary_key" json:"product_code" binding:"required"`
	ProductName string          `gorm:"size:100" json:"product_name" binding:"required"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"unit_price"`
}

// ProductUpdate lists the mutable fields. The product code identifies the
// row and can never be rewritten through an update.
type ProductUpdate struct {
	ProductName string          `json:"product_name" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func GetProducts(ctx context.Context, db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.WithContext(ctx).Find(&products).Error
	return products, err
}

func GetProduct(ctx context.Context, db *gorm.DB, productCode string) (Product, error) {
	var product Product
	err := db.WithContext(ctx).Where("product_code = ?", productCode).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, utils.ErrorRecordNotFound
	}
	return product, err
}

func CreateProduct(ctx context.Context, db *gorm.DB, product *Product) error {
	var existing Product
	err := db.WithContext(ctx).Where("product_code = ?", product.ProductCode).First(&existing).Error
	if err == nil {
		return utils.ErrDuplicateRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(product).Error
}

func UpdateProduct(ctx context.Context, db *gorm.DB, productCode string, update ProductUpdate) (Product, error) {
	product, err := GetProduct(ctx, db, productCode)
	if err != nil {
		return product, err
	}
	err = db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"product_name": update.ProductName,
		"unit_price":   update.UnitPrice,
	}).Error
	if err != nil {
		return product, err
	}
	product.ProductName = update.ProductName
	product.UnitPrice = update.UnitPrice
	return product, nil
}

func DeleteProduct(ctx context.Context, db *gorm.DB, productCode string) error {
	result := db.WithContext(ctx).Where("product_code = ?", productCode).Delete(&Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// FindOrCreateProduct looks the product up by code and creates it with the
// supplied name and a zero unit price when absent. The second return value
// reports whether a row was created.
func FindOrCreateProduct(ctx context.Context, tx *gorm.DB, productCode, productName string) (Product, bool, error) {
	var product Product
	err := tx.WithContext(ctx).Where("product_code = ?", productCode).First(&product).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return product, false, fmt.Errorf("error finding product: %v", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		product = Product{
			ProductCode: productCode,
			ProductName: productName,
			UnitPrice:   decimal.Zero,
		}
		if err := tx.WithContext(ctx).Create(&product).Error; err != nil {
			return product, false, fmt.Errorf("could not create product: %v", err)
		}
		return product, true, nil
	}

	return product, false, nil
}
