package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

func consumptionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func (app *application) listConsumptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		averages, err := models.GetYearlyAverageConsumptions(c.Request.Context(), app.db)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, averages)
	}
}

func (app *application) getConsumptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := consumptionID(c)
		if !ok {
			return
		}
		average, err := models.GetYearlyAverageConsumption(c.Request.Context(), app.db, id)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, average)
	}
}

func (app *application) createConsumptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var average models.YearlyAverageConsumption
		if err := c.ShouldBindJSON(&average); err != nil {
			respondBindError(c, err)
			return
		}
		if err := models.CreateYearlyAverageConsumption(c.Request.Context(), app.db, &average); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, average)
	}
}

func (app *application) updateConsumptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := consumptionID(c)
		if !ok {
			return
		}
		var update models.YearlyAverageConsumptionUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			respondBindError(c, err)
			return
		}
		average, err := models.UpdateYearlyAverageConsumption(c.Request.Context(), app.db, id, update)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, average)
	}
}

func (app *application) deleteConsumptionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := consumptionID(c)
		if !ok {
			return
		}
		if err := models.DeleteYearlyAverageConsumption(c.Request.Context(), app.db, id); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "yearly average consumption deleted successfully"})
	}
}
