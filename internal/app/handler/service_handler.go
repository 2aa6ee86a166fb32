package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН УСЛУГИ ============

func serviceToDTO(service ds.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		IsActive:    service.IsActive,
	}
}

// GetServices получает список услуг
// @Summary Получение списка услуг
// @Description Возвращает список активных услуг с возможностью поиска по названию
// @Tags Services
// @Produce json
// @Param query query string false "Поиск по названию услуги"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	searchQuery := c.Query("query")

	services, err := h.Repository.GetAllServices(searchQuery)
	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения услуг")
		return
	}

	// Преобразуем в DTO
	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = serviceToDTO(s)
	}

	response := dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	}

	c.JSON(http.StatusOK, response)
}

// GetService получает услугу с вариантами подписки
// @Summary Получение услуги
// @Description Возвращает услугу по ID вместе с её вариантами подписки
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	service, options, err := h.Repository.GetServiceWithOptions(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	response := serviceToDTO(*service)
	response.SubscriptionOptions = optionsToDTO(options)

	c.JSON(http.StatusOK, response)
}

// CreateService создание услуги
// @Summary Создание услуги
// @Description Добавляет новую услугу автомойки (только администратор)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Цена услуги не может быть отрицательной")
		return
	}

	service, err := h.Repository.CreateService(request.Name, request.Description, request.Price)
	if err != nil {
		logrus.Error("Error creating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания услуги")
		return
	}

	h.successResponse(c, http.StatusCreated, "услуга успешно создана", serviceToDTO(*service))
}

// UpdateService изменение услуги
// @Summary Изменение услуги
// @Description Обновляет поля услуги (только администратор)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price != nil && request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Цена услуги не может быть отрицательной")
		return
	}

	err = h.Repository.UpdateService(uint(id), request.Name, request.Description, request.Price, request.IsActive)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "услуга успешно обновлена", nil)
}

// DeleteService логическое удаление услуги
// @Summary Удаление услуги
// @Description Деактивирует услугу, записи заявок сохраняются (только администратор)
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	err = h.Repository.DeleteService(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "услуга успешно удалена", nil)
}
