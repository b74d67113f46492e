package models

import (
	"context"
	"io"

	"gorm.io/gorm"
)

// ProductRow is one row of the product-only upload.
type ProductRow struct {
	ProductCode string
	ProductName string
}

// ParseProductWorkbook reads the first sheet of an xlsx stream into
// product rows, enforcing the code and name columns.
func ParseProductWorkbook(r io.Reader) ([]ProductRow, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	columns, err := requireColumns(rows[0], ColumnProductCode, ColumnProductName)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	parsed := make([]ProductRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parsed = append(parsed, ProductRow{
			ProductCode: cell(row, columns[ColumnProductCode]),
			ProductName: cell(row, columns[ColumnProductName]),
		})
	}

	return parsed, nil
}

// ImportProducts creates any products not yet in the catalog. Rows with a
// blank code or name are skipped silently; existing products are left
// untouched.
func ImportProducts(ctx context.Context, db *gorm.DB, rows []ProductRow) (ImportSummary, error) {
	var summary ImportSummary

	for _, row := range rows {
		if row.ProductCode == "" || row.ProductName == "" {
			continue
		}
		if _, _, err := FindOrCreateProduct(ctx, db, row.ProductCode, row.ProductName); err != nil {
			summary.Failed++
			continue
		}
		summary.Imported++
	}

	return summary, nil
}
