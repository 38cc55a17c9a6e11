package controllers

import (
	"net/http"
	"strconv"

	"compliance-report-api/config"
	"compliance-report-api/models"

	"github.com/gin-gonic/gin"
)

// GetProyectos returns the projects of one institution.
func GetProyectos(c *gin.Context) {
	institucionID, err := strconv.Atoi(c.Query("institucionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid institucionId"})
		return
	}

	proyectos := []models.Proyecto{}
	if err := config.DB.Where("institucion_id = ?", institucionID).Find(&proyectos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, proyectos)
}
