package handler

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ВАРИАНТЫ ПОДПИСКИ ============

// optionWithPricing собирает DTO варианта подписки с акциями и ценой со скидкой
func (h *APIHandler) optionWithPricing(option ds.SubscriptionOption) dto.SubscriptionOptionResponse {
	response := optionToDTO(option)

	offers, err := h.Repository.GetOffersForOption(option.ID)
	if err != nil {
		logrus.Warn("failed to load offers for option: ", err)
		return response
	}

	response.Offers = offersToDTO(offers)

	// Итоговая цена с учётом лучшей действующей скидки
	discount := billing.BestDiscount(offers, time.Now())
	total := option.Price.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	response.TotalPrice = &total

	return response
}

// GetSubscriptionOptions список вариантов подписки
// @Summary Получение вариантов подписки
// @Description Возвращает варианты подписки, опционально по услуге, с акциями и итоговой ценой
// @Tags SubscriptionOptions
// @Produce json
// @Param service_id query int false "ID услуги"
// @Success 200 {object} dto.SubscriptionOptionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/subscription-options [get]
func (h *APIHandler) GetSubscriptionOptions(c *gin.Context) {
	var serviceID *uint
	if raw := c.Query("service_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
			return
		}
		converted := uint(id)
		serviceID = &converted
	}

	options, err := h.Repository.GetSubscriptionOptions(serviceID)
	if err != nil {
		logrus.Error("Error getting subscription options: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения вариантов подписки")
		return
	}

	dtoOptions := make([]dto.SubscriptionOptionResponse, len(options))
	for i, option := range options {
		dtoOptions[i] = h.optionWithPricing(option)
	}

	c.JSON(http.StatusOK, dto.SubscriptionOptionListResponse{
		Options: dtoOptions,
		Total:   len(dtoOptions),
	})
}

// GetSubscriptionOption один вариант подписки
// @Summary Получение варианта подписки
// @Description Возвращает вариант подписки с акциями и итоговой ценой
// @Tags SubscriptionOptions
// @Produce json
// @Param id path int true "ID варианта подписки"
// @Success 200 {object} dto.SubscriptionOptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/subscription-options/{id} [get]
func (h *APIHandler) GetSubscriptionOption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID варианта подписки")
		return
	}

	option, err := h.Repository.GetSubscriptionOptionByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, h.optionWithPricing(*option))
}

// CreateSubscriptionOption создание варианта подписки
// @Summary Создание варианта подписки
// @Description Добавляет вариант подписки для услуги (только администратор)
// @Tags SubscriptionOptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubscriptionOptionRequest true "Данные варианта подписки"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/subscription-options [post]
func (h *APIHandler) CreateSubscriptionOption(c *gin.Context) {
	var request dto.CreateSubscriptionOptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Цена варианта подписки не может быть отрицательной")
		return
	}

	count := request.Count
	if count == 0 {
		count = 1
	}

	option := ds.SubscriptionOption{
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
		Count:       count,
		Price:       request.Price,
		Duration:    request.Duration,
		ServiceID:   request.ServiceID,
	}

	err := h.Repository.CreateSubscriptionOption(&option)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "вариант подписки успешно создан", optionToDTO(option))
}

// UpdateSubscriptionOption изменение варианта подписки
// @Summary Изменение варианта подписки
// @Description Обновляет поля варианта подписки (только администратор)
// @Tags SubscriptionOptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID варианта подписки"
// @Param request body dto.UpdateSubscriptionOptionRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/subscription-options/{id} [put]
func (h *APIHandler) UpdateSubscriptionOption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID варианта подписки")
		return
	}

	var request dto.UpdateSubscriptionOptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price != nil && request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Цена варианта подписки не может быть отрицательной")
		return
	}

	err = h.Repository.UpdateSubscriptionOption(uint(id), request.Name, request.Description, request.Count, request.Duration, request.Price)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "вариант подписки успешно обновлён", nil)
}

// DeleteSubscriptionOption удаление варианта подписки
// @Summary Удаление варианта подписки
// @Description Удаляет вариант подписки (только администратор)
// @Tags SubscriptionOptions
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID варианта подписки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/subscription-options/{id} [delete]
func (h *APIHandler) DeleteSubscriptionOption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID варианта подписки")
		return
	}

	err = h.Repository.DeleteSubscriptionOption(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "вариант подписки успешно удалён", nil)
}
