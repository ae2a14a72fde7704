package main

import (
	"flag"
	"github.com/joho/godotenv"
	"log"
	"os"
	"travel-planner-server/db"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	testMode := os.Getenv("TEST_MODE")
	if testMode == "" {
		testMode = "real"
	}

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// setup routes
	SetupRoutes(*port)
}
