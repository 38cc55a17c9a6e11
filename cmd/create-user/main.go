// Operator tool to create a login user with a bcrypt-hashed password.
// cmd/create-user/main.go
package main

import (
	"flag"
	"log"

	"compliance-report-api/config"
	"compliance-report-api/models"
	"compliance-report-api/utils"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "login username (required)")
	password := flag.String("password", "", "password to hash (required)")
	nombre := flag.String("nombre", "", "display name (optional)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Usage: create-user -username <name> -password <password> [-nombre <display name>]")
	}

	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := models.Usuario{
		Username: utils.SanitizeInput(*username),
		Password: hashed,
	}
	if *nombre != "" {
		user.Nombre = nombre
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("User %s created successfully (id=%d)\n", user.Username, user.ID)
}
