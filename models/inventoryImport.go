package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/zaywreck/warehouse_backend/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Source workbook headers. These come from the upstream stock export and
// are matched exactly.
const (
	ColumnProductCode   = "Malzeme"
	ColumnProductName   = "Malzeme Tanım"
	ColumnWarehouseCode = "DepoY."
	ColumnInventoryCode = "UNIQID"
	ColumnQuantity      = "Toplam Miktar"
)

// cityCodeLength is the prefix of the warehouse code that identifies the
// city. A warehouse code shorter than this cannot be reconciled.
const cityCodeLength = 2

var (
	ErrEmptyDataset   = errors.New("workbook contains no data rows")
	ErrMissingColumns = errors.New("workbook is missing required columns")
)

// InventoryRow is one parsed upload row, before reconciliation. Quantity
// stays the raw cell text; reconciliation parses it so an unreadable
// number fails that row instead of importing a zero.
type InventoryRow struct {
	ProductCode   string
	ProductName   string
	WarehouseCode string
	InventoryCode string
	Quantity      string
}

// ImportSummary reports the outcome of a reconciliation run. Failures are
// per-row; they never abort the run or roll back earlier rows.
type ImportSummary struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// ParseInventoryWorkbook reads the first sheet of an xlsx stream into
// typed rows. It rejects the whole upload when the header row misses a
// required column or when no data rows follow the header.
func ParseInventoryWorkbook(r io.Reader) ([]InventoryRow, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	columns, err := requireColumns(rows[0],
		ColumnProductCode, ColumnProductName, ColumnWarehouseCode, ColumnInventoryCode, ColumnQuantity)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	parsed := make([]InventoryRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parsed = append(parsed, InventoryRow{
			ProductCode:   cell(row, columns[ColumnProductCode]),
			ProductName:   cell(row, columns[ColumnProductName]),
			WarehouseCode: cell(row, columns[ColumnWarehouseCode]),
			InventoryCode: cell(row, columns[ColumnInventoryCode]),
			Quantity:      cell(row, columns[ColumnQuantity]),
		})
	}

	return parsed, nil
}

// ImportInventory reconciles parsed rows against the catalog and the
// inventory table. Per row, in dependency order: city, warehouse, product
// are created when absent, then the fact row is upserted by inventory
// code with the ingestion timestamp. A failing row is logged and counted;
// rows already written stay written.
func ImportInventory(ctx context.Context, db *gorm.DB, logger *logrus.Logger, rows []InventoryRow) (ImportSummary, error) {
	var summary ImportSummary

	for idx, row := range rows {
		if err := importInventoryRow(ctx, db, row); err != nil {
			summary.Failed++
			config.LogError(logger, "inventoryImport.go", "ImportInventory",
				fmt.Sprintf("row %d", idx+2), row, err)
			continue
		}
		summary.Imported++
	}

	return summary, nil
}

func importInventoryRow(ctx context.Context, db *gorm.DB, row InventoryRow) error {
	if row.ProductCode == "" || row.WarehouseCode == "" || row.InventoryCode == "" {
		return errors.New("row is missing product, warehouse or inventory code")
	}
	if len([]rune(row.WarehouseCode)) < cityCodeLength {
		return fmt.Errorf("warehouse code %q is too short to derive a city code", row.WarehouseCode)
	}
	cityCode := string([]rune(row.WarehouseCode)[:cityCodeLength])

	quantity, err := parseQuantity(row.Quantity)
	if err != nil {
		return err
	}

	if _, _, err := FindOrCreateCity(ctx, db, cityCode); err != nil {
		return err
	}
	if _, _, err := FindOrCreateWarehouse(ctx, db, row.WarehouseCode, cityCode); err != nil {
		return err
	}
	if _, _, err := FindOrCreateProduct(ctx, db, row.ProductCode, row.ProductName); err != nil {
		return err
	}

	record := InventoryRecord{
		InventoryCode: row.InventoryCode,
		ProductCode:   row.ProductCode,
		WarehouseCode: row.WarehouseCode,
		Quantity:      quantity,
		Timestamp:     time.Now(),
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "inventory_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"product_code", "warehouse_code", "quantity", "timestamp"}),
	}).Create(&record).Error
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyDataset
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet: %v", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	return rows, nil
}

// requireColumns maps header names to column indexes, failing when any of
// the wanted headers is absent.
func requireColumns(header []string, wanted ...string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}

	var missing []string
	for _, name := range wanted {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return columns, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseQuantity accepts the integer-ish strings Excel produces for
// numeric cells ("5", "5.0", "1,250").
func parseQuantity(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty quantity")
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("could not parse quantity %q: %v", s, err)
	}
	return int(d.IntPart()), nil
}
