package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
)

func (app *application) listProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := models.GetProducts(c.Request.Context(), app.db)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func (app *application) getProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := models.GetProduct(c.Request.Context(), app.db, c.Param("product_code"))
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (app *application) createProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			respondBindError(c, err)
			return
		}
		if err := models.CreateProduct(c.Request.Context(), app.db, &product); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func (app *application) updateProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.ProductUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			respondBindError(c, err)
			return
		}
		product, err := models.UpdateProduct(c.Request.Context(), app.db, c.Param("product_code"), update)
		if err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (app *application) deleteProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteProduct(c.Request.Context(), app.db, c.Param("product_code")); err != nil {
			respondModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "product deleted successfully"})
	}
}

// uploadProductsHandler loads the product catalog from an xlsx upload.
// Rows with a blank code or name are skipped.
func (app *application) uploadProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, ok := openSpreadsheetUpload(c)
		if !ok {
			return
		}
		defer file.Close()

		rows, err := models.ParseProductWorkbook(file)
		if err != nil {
			respondModelError(c, err)
			return
		}

		summary, err := models.ImportProducts(c.Request.Context(), app.db, rows)
		if err != nil {
			respondModelError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "products uploaded successfully",
			"imported": summary.Imported,
			"failed":   summary.Failed,
		})
	}
}
