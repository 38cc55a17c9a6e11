package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxFiniquitoSize caps closure-document uploads at 5 MB.
const maxFiniquitoSize = 5 * 1024 * 1024

// UploadFiniquito stores a closure document and returns the relative path
// the client submits as finiquitoLink.
func UploadFiniquito(c *gin.Context) {
	file, err := c.FormFile("finiquito")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > maxFiniquitoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5 MB limit"})
		return
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are accepted"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}

	storedName := uuid.New().String() + ".pdf"
	if err := c.SaveUploadedFile(file, filepath.Join(uploadPath, storedName)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded successfully",
		"filePath": "/uploads/" + storedName,
	})
}
