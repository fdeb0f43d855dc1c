package main

import (
	_ "github.com/VLP-TECH/real-state-enrique-sub000/docs"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Observatorio & Club API
// @version         1.0
// @description     Regional digital-economy observatory and private real-estate club, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
