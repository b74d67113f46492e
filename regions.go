package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

func (app *application) listRegionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		regions, err := models.GetRegions(c.Request.Context(), app.db)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, regions)
	}
}

func (app *application) getRegionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		region, err := models.GetRegion(c.Request.Context(), app.db, c.Param("region_code"))
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, region)
	}
}

func (app *application) createRegionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var region models.Region
		if err := c.ShouldBindJSON(&region); err != nil {
			respondBindError(c, err)
			return
		}
		if err := models.CreateRegion(c.Request.Context(), app.db, &region); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, region)
	}
}

func (app *application) updateRegionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.RegionUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			respondBindError(c, err)
			return
		}
		region, err := models.UpdateRegion(c.Request.Context(), app.db, c.Param("region_code"), update)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, region)
	}
}

func (app *application) deleteRegionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteRegion(c.Request.Context(), app.db, c.Param("region_code")); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "region deleted successfully"})
	}
}
