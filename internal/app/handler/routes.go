package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.LogoutUser)
		auth.PUT("/change-password", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.ChangePassword)
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.UpdateProfile)
		auth.POST("/profile/picture", authMiddleware.WithAuthCheck(role.Client, role.Admin), h.AuthHandler.UploadProfilePicture)
	}

	// ============ Задачи (Todos) - только для владельца ============
	todos := api.Group("/todos")
	todos.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		todos.GET("", h.GetTodos)                          // GET список своих задач
		todos.GET("/:id", h.GetTodo)                       // GET одна задача
		todos.POST("", h.CreateTodo)                       // POST создание
		todos.PUT("/:id", h.UpdateTodo)                    // PUT изменение
		todos.PUT("/:id/complete", h.ToggleTodoComplete)   // PUT переключение отметки
		todos.DELETE("/:id", h.DeleteTodo)                 // DELETE удаление
	}

	// ============ Услуги (Services) ============
	services := api.Group("/services")
	{
		// Публичные эндпоинты (без авторизации)
		services.GET("", h.GetServices)    // GET список с поиском
		services.GET("/:id", h.GetService) // GET одна запись с вариантами подписки

		// Только для администраторов
		services.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateService)
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)
	}

	// ============ Варианты подписки (Subscription Options) ============
	options := api.Group("/subscription-options")
	{
		options.GET("", h.GetSubscriptionOptions)
		options.GET("/:id", h.GetSubscriptionOption)

		options.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateSubscriptionOption)
		options.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateSubscriptionOption)
		options.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteSubscriptionOption)
	}

	// ============ Акции (Offers) - управление только для администраторов ============
	offers := api.Group("/offers")
	{
		offers.GET("", h.GetOffers)
		offers.GET("/:id", h.GetOffer)

		offers.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateOffer)
		offers.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateOffer)
		offers.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteOffer)
	}

	// ============ Заявки (Service Requests) - для авторизованных пользователей ============
	requests := api.Group("/service-requests")
	requests.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		requests.GET("", h.GetServiceRequests)          // свои заявки; администратор видит все
		requests.POST("", h.CreateServiceRequest)       // POST создание с расчётом стоимости
		requests.GET("/:id", h.GetServiceRequest)       // GET детали с платежами
		requests.PUT("/:id", h.UpdateServiceRequest)    // PUT изменение расписания и автомобиля
		requests.DELETE("/:id", h.DeleteServiceRequest) // DELETE удаление
	}

	// ============ Платежи (Payments) ============
	payments := api.Group("/payments")
	payments.Use(authMiddleware.WithAuthCheck(role.Client, role.Admin))
	{
		payments.POST("", h.CreatePayment)
		payments.GET("/request/:id", h.GetRequestPayments) // GET разбивка платежей по заявке
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
