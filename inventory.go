package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

// uploadInventoryHandler runs the spreadsheet reconciliation: the media
// type and the header row are hard preconditions, then every data row is
// reconciled best-effort. Missing cities, warehouses and products are
// created on first reference; the fact row is upserted by inventory code.
func (app *application) uploadInventoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, ok := openSpreadsheetUpload(c)
		if !ok {
			return
		}
		defer file.Close()

		rows, err := models.ParseInventoryWorkbook(file)
		if err != nil {
			respondModelError(c, err)
			return
		}

		summary, err := models.ImportInventory(c.Request.Context(), app.db, app.logger, rows)
		if err != nil {
			respondModelError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "inventory data uploaded successfully",
			"imported": summary.Imported,
			"failed":   summary.Failed,
		})
	}
}

func (app *application) getWarehouseInventoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := models.GetWarehouseInventory(c.Request.Context(), app.db, c.Param("warehouse_code"))
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func (app *application) getJoinedInventoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		warehouseCode := c.Query("warehouse_code")
		if warehouseCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "warehouse_code is required"})
			return
		}

		records, err := models.GetJoinedInventory(c.Request.Context(), app.db, warehouseCode)
		if err != nil {
			respondModelError(c, err)
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no inventory data found for the given warehouse"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
