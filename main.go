package main

import (
	"os"

	"bike-shop/commands"
	_ "bike-shop/docs"
)

// @title Bike Shop API
// @version 1.0
// @description Motorcycle catalog with search, admin item management and a server-rendered storefront.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
