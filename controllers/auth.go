package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"compliance-report-api/config"
	"compliance-report-api/middleware"
	"compliance-report-api/models"
	"compliance-report-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and sets the signed session cookie.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	var user models.Usuario
	if err := config.DB.Where("username = ?", utils.SanitizeInput(req.Username)).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}

	setSessionCookie(c, token, int(middleware.SessionDuration.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": user.Username,
	})
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Verify reports whether the request carries a valid session. It sits on
// the public group so an expired client can poll it without a 401 redirect
// loop through the auth middleware.
func Verify(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	claims, err := middleware.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      claims.Username,
	})
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := strings.ToLower(os.Getenv("ENVIRONMENT")) == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}

// generateToken creates the session JWT for a user.
func generateToken(user models.Usuario) (string, error) {
	claims := middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(middleware.SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
