package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

func (app *application) listWarehousesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		warehouses, err := models.GetWarehouses(c.Request.Context(), app.db)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, warehouses)
	}
}

func (app *application) getWarehouseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		warehouse, err := models.GetWarehouse(c.Request.Context(), app.db, c.Param("warehouse_code"))
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, warehouse)
	}
}

func (app *application) createWarehouseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var warehouse models.Warehouse
		if err := c.ShouldBindJSON(&warehouse); err != nil {
			respondBindError(c, err)
			return
		}
		if err := models.CreateWarehouse(c.Request.Context(), app.db, &warehouse); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, warehouse)
	}
}

func (app *application) updateWarehouseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.WarehouseUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			respondBindError(c, err)
			return
		}
		warehouse, err := models.UpdateWarehouse(c.Request.Context(), app.db, c.Param("warehouse_code"), update)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, warehouse)
	}
}

// deleteWarehouseHandler removes a warehouse and its inventory rows.
func (app *application) deleteWarehouseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteWarehouse(c.Request.Context(), app.db, c.Param("warehouse_code")); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "warehouse deleted successfully"})
	}
}
