package main

import (
	"backend/internal/app/ds"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=carwash_db port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var services []ds.Service
	err = db.Find(&services).Error
	if err != nil {
		log.Fatal("Failed to get services:", err)
	}

	fmt.Println("Services in database:")
	for _, service := range services {
		fmt.Printf("ID: %d, Name: %s, Price: %s, Active: %v\n", service.ID, service.Name, service.Price.String(), service.IsActive)
	}
}
