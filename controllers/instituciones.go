package controllers

import (
	"net/http"

	"compliance-report-api/config"
	"compliance-report-api/models"

	"github.com/gin-gonic/gin"
)

// GetInstituciones returns the institution catalog.
func GetInstituciones(c *gin.Context) {
	instituciones := []models.Institucion{}
	if err := config.DB.Order("nombre").Find(&instituciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch institutions"})
		return
	}

	c.JSON(http.StatusOK, instituciones)
}
