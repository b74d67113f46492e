package main

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/models"
	"github.com/zaywreck/warehouse_backend/utils"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// respondModelError maps a models-layer error onto an HTTP response.
func respondModelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, utils.ErrDuplicateRecord):
		c.JSON(http.StatusConflict, gin.H{"error": "record already exists"})
	case errors.Is(err, models.ErrEmptyDataset), errors.Is(err, models.ErrMissingColumns):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondBindError reports a request binding failure, with per-field
// detail when the payload failed struct validation.
func respondBindError(c *gin.Context, err error) {
	if fields := utils.ProcessValidationErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// openSpreadsheetUpload extracts the uploaded file part and enforces its
// media type before anything is read.
func openSpreadsheetUpload(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return nil, false
	}

	if fileHeader.Header.Get("Content-Type") != xlsxMimeType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file format, only Excel files are supported"})
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return nil, false
	}
	return f, true
}
