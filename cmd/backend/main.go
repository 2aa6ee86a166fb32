package main

import (
	"backend/internal/api"
	"log"

	_ "backend/docs"
)

// @title Carwash Backend API
// @version 1.0
// @description REST API сервиса автомойки: услуги, подписки, акции, заявки и платежи

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Введите токен в формате: Bearer {token}

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
