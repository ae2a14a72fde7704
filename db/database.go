package db

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
	"travel-planner-server/model"
)

var db *gorm.DB
var testMode string

func InitDB(testModeArg string) (*gorm.DB, error) {
	// save testMode
	testMode = testModeArg

	var err error
	if testMode == "real" {
		err = godotenv.Load()
		if err != nil {
			log.Println("No .env file found, reading configuration from the environment")
		}

		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		user := os.Getenv("DB_USERNAME")
		password := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		if name == "" {
			name = "travel_planner_db"
		}

		dsn := "host=" + host + " user=" + user + " password=" + password + " dbname=" + name + " port=5432 sslmode=disable"
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt:    true,
			TranslateError: true,
		})
		if err != nil {
			// can't connect to the db, the server should stop
			log.Fatalf("Failed to connect to database: %v", err)
			return nil, err
		}
	} else if testMode == "test" {
		db, err = gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			return nil, err
		}

		// a single connection keeps the in-memory database alive
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	} else {
		log.Fatal("Invalid test mode")
	}

	err = Migrate()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func GetDB() *gorm.DB {
	return db
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
	err = sqlDB.Close()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
}

// Migrate creates or updates the schema from the model metadata, including the
// users_travels join table.
func Migrate() error {
	return db.AutoMigrate(
		&model.User{},
		&model.City{},
		&model.Travel{},
		&model.Accommodation{},
		&model.Transport{},
		&model.Activity{},
		&model.Expense{},
	)
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	// children first, referenced tables last
	tables := []string{
		"users_travels",
		"accommodations",
		"transports",
		"activities",
		"expenses",
		"travels",
		"users",
		"cities",
	}
	for _, table := range tables {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
