package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

// listCitiesHandler returns the code+name projection of every city.
func (app *application) listCitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := models.GetCities(c.Request.Context(), app.db)
		if err != nil {
			respondModelError(c, err)
			return
		}

		out := make([]gin.H, 0, len(cities))
		for _, city := range cities {
			out = append(out, gin.H{
				"city_code": city.CityCode,
				"city_name": city.CityName,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
