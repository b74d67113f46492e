package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zaywreck/warehouse_backend/models"
)

func uploadFileRequest(t *testing.T, router http.Handler, path, filename, mimeType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartUpload(t, filename, mimeType, content)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadInventory_RejectsWrongMediaType(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	w := uploadFileRequest(t, router, "/inventory/upload", "stok.csv", "text/csv", []byte("Malzeme;UNIQID\nM001;INV1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}

	// Nothing may have been read or written.
	for _, model := range []interface{}{&models.City{}, &models.Warehouse{}, &models.Product{}, &models.InventoryRecord{}} {
		var count int64
		if err := app.db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 0 {
			t.Fatalf("%T rows created despite rejected upload", model)
		}
	}
}

func TestUploadInventory_RejectsMissingColumns(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	content := workbookBytes(t, [][]interface{}{
		{"Malzeme", "UNIQID"},
		{"M001", "INV1"},
	})
	w := uploadFileRequest(t, router, "/inventory/upload", "stok.xlsx", xlsxMimeType, content)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}

	var count int64
	if err := app.db.Model(&models.InventoryRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("rows created despite rejected upload")
	}
}

func TestUploadInventory_EndToEnd(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	content := workbookBytes(t, [][]interface{}{
		{"Malzeme", "Malzeme Tanım", "DepoY.", "UNIQID", "Toplam Miktar"},
		{"M001", "Widget", "34YB", "INV1", 5},
	})
	w := uploadFileRequest(t, router, "/inventory/upload", "stok.xlsx", xlsxMimeType, content)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var city models.City
	if err := app.db.Where("city_code = ?", "34").First(&city).Error; err != nil {
		t.Fatalf("city: %v", err)
	}
	var warehouse models.Warehouse
	if err := app.db.Where("warehouse_code = ? AND city_code = ?", "34YB", "34").First(&warehouse).Error; err != nil {
		t.Fatalf("warehouse: %v", err)
	}
	var product models.Product
	if err := app.db.Where("product_code = ?", "M001").First(&product).Error; err != nil {
		t.Fatalf("product: %v", err)
	}
	var record models.InventoryRecord
	if err := app.db.Where("inventory_code = ?", "INV1").First(&record).Error; err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if record.ProductCode != "M001" || record.WarehouseCode != "34YB" || record.Quantity != 5 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestUploadProducts_EndToEnd(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	content := workbookBytes(t, [][]interface{}{
		{"Malzeme", "Malzeme Tanım"},
		{"M001", "Widget"},
		{"", "Nameless"},
	})
	w := uploadFileRequest(t, router, "/products/upload", "urun.xlsx", xlsxMimeType, content)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var count int64
	if err := app.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product, got %d", count)
	}
}
