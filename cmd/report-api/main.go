package main

import (
	"log"

	"go-staff-reports/internal/api"
	"go-staff-reports/internal/store"
	"go-staff-reports/pkg/router"

	_ "go-staff-reports/docs"
)

func main() {
	// Init DB
	if err := store.InitDB("reports.db"); err != nil {
		panic(err)
	}

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	if err := r.Start(":8080"); err != nil {
		log.Fatal(err)
	}
}
