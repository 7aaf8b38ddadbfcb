package main

import (
	"log"
	"os"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
)

func main() {
	log.Println("Starting schema migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Printf("Migration failed: %v", err)
		os.Exit(1)
	}

	log.Println("Schema migration completed successfully")
}
