package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"compliance-report-api/config"
	"compliance-report-api/models"
	"compliance-report-api/services"
	"compliance-report-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReporteRequest struct {
	ProyectoID    int     `json:"proyectoId" binding:"required"`
	Anio          int     `json:"anio" binding:"required"`
	Cumplimiento  float64 `json:"cumplimiento" binding:"min=0"`
	Aclaraciones  string  `json:"aclaraciones" binding:"required"`
	Justificacion *string `json:"justificacion"`
	Poa           bool    `json:"poa"`
	Pei           bool    `json:"pei"`
	Pom           bool    `json:"pom"`
	PoaLink       *string `json:"poaLink"`
	PeiLink       *string `json:"peiLink"`
	PomLink       *string `json:"pomLink"`
	FiniquitoLink *string `json:"finiquitoLink"`
}

// GetRegisteredYears returns the distinct years already reported for a
// project, so the form can offer only the remaining ones. The server still
// re-runs the same check on submission.
func GetRegisteredYears(c *gin.Context) {
	proyectoID, err := strconv.Atoi(c.Query("proyectoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid proyectoId"})
		return
	}

	years, err := services.NewReportQueryService(config.DB).RegisteredYears(proyectoID)
	if err != nil {
		log.Printf("Failed to fetch registered years: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, years)
}

// CreateReporte validates and stores one compliance submission.
func CreateReporte(c *gin.Context) {
	var req CreateReporteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: proyectoId, anio, cumplimiento or aclaraciones"})
		return
	}

	candidate := &models.Reporte{
		ProyectoID:    req.ProyectoID,
		Anio:          req.Anio,
		Cumplimiento:  req.Cumplimiento,
		Aclaraciones:  utils.SanitizeInput(req.Aclaraciones),
		Justificacion: sanitizeOptional(req.Justificacion),
		Poa:           req.Poa,
		Pei:           req.Pei,
		Pom:           req.Pom,
		PoaLink:       sanitizeOptional(req.PoaLink),
		PeiLink:       sanitizeOptional(req.PeiLink),
		PomLink:       sanitizeOptional(req.PomLink),
		FiniquitoLink: sanitizeOptional(req.FiniquitoLink),
	}

	created, err := services.NewReportService(config.DB).Create(candidate)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			status := http.StatusBadRequest
			if verr.Code == services.ErrCodeProjectMetaNotFound {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": verr.Message, "code": verr.Code})
			return
		}
		log.Printf("Failed to create report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report created successfully",
		"report":  created,
	})
}

// GetAllReportes returns the denormalized admin listing, optionally
// filtered by project.
func GetAllReportes(c *gin.Context) {
	var proyectoID *int
	if raw := c.Query("proyectoId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proyectoId"})
			return
		}
		proyectoID = &id
	}

	rows, err := services.NewReportQueryService(config.DB).ListAll(proyectoID)
	if err != nil {
		log.Printf("Failed to fetch reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// DownloadReportePDF streams the PDF summary of one report.
func DownloadReportePDF(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	row, err := services.NewReportQueryService(config.DB).Get(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		log.Printf("Failed to fetch report %d: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	renderer := services.NewPDFRenderer()
	data, err := renderer.Render(row)
	if err != nil {
		log.Printf("Failed to render report %d: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+renderer.Filename(row)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// sanitizeOptional trims an optional text field, normalizing empty values
// to nil.
func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := utils.SanitizeInput(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
