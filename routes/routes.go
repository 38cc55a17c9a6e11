package routes

import (
	"compliance-report-api/controllers"
	"compliance-report-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/auth/login", controllers.Login)
			public.GET("/auth/verify", controllers.Verify)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Compliance Report API is running",
				})
			})
		}

		// Protected routes (require a valid session cookie)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/logout", controllers.Logout)

			// Catalog
			protected.GET("/institutions", controllers.GetInstituciones)
			protected.GET("/projects", controllers.GetProyectos)

			// Reports
			reports := protected.Group("/reports")
			{
				reports.GET("", controllers.GetRegisteredYears)
				reports.POST("", controllers.CreateReporte)
				reports.GET("/all", controllers.GetAllReportes)
				reports.GET("/:id/pdf", controllers.DownloadReportePDF)
			}

			// Closure document upload
			protected.POST("/upload", controllers.UploadFiniquito)
		}
	}
}
