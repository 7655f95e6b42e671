package main

import (
	_ "fleetval/docs"
	"fleetval/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Crane Valuation Report API
// @version         1.0
// @description     Valuation report lifecycle and payment reconciliation service backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
