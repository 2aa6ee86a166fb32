package handler

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАЯВКИ ============

const timeLayout = "15:04"

// requestToDTO собирает DTO заявки. Акции и разбивка платежей опциональны
func (h *APIHandler) requestToDTO(request ds.ServiceRequest, offers []ds.Offer, settlement *billing.Settlement) dto.ServiceRequestResponse {
	response := dto.ServiceRequestResponse{
		ID:               request.ID,
		User:             request.User.Login,
		Service:          request.Service.Name,
		SubscriptionType: request.SubscriptionType,
		Date:             request.Date.Format(dateLayout),
		Time:             request.Time.Format(timeLayout),
		CarBrand:         request.CarBrand,
		CarModel:         request.CarModel,
		CarColor:         request.CarColor,
		CarNumber:        request.CarNumber,
		RequestPrice:     request.RequestPrice,
	}

	if request.SubscriptionOption != nil {
		response.SubscriptionOption = request.SubscriptionOption.Name
	}

	// Дата окончания подписки
	endDate, err := billing.EndDate(request.SubscriptionType, request.Date, request.SubscriptionOption)
	if err == nil {
		response.EndDate = endDate.Format(dateLayout)
	}

	if offers != nil {
		response.Offers = offersToDTO(offers)
	}

	if settlement != nil {
		response.PaymentStatus = settlement.Status
		response.Payments = settlement.Breakdown
	}

	return response
}

// settlementFor считает разбивку платежей для заявки
func (h *APIHandler) settlementFor(request ds.ServiceRequest) (*billing.Settlement, error) {
	payments, err := h.Repository.GetPaymentsByRequest(request.ID)
	if err != nil {
		return nil, err
	}
	settlement := billing.Settle(request.RequestPrice, payments)
	return &settlement, nil
}

// GetServiceRequests список заявок
// @Summary Получение списка заявок
// @Description Возвращает заявки текущего пользователя; администратор видит все
// @Tags ServiceRequests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ServiceRequestListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/service-requests [get]
func (h *APIHandler) GetServiceRequests(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var requests []ds.ServiceRequest
	if userRole.IsAdmin() {
		requests, err = h.Repository.GetAllServiceRequests()
	} else {
		requests, err = h.Repository.GetServiceRequestsByUser(userID)
	}
	if err != nil {
		logrus.Error("Error getting service requests: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заявок")
		return
	}

	dtoRequests := make([]dto.ServiceRequestResponse, len(requests))
	for i, request := range requests {
		settlement, err := h.settlementFor(request)
		if err != nil {
			logrus.Warn("failed to settle request payments: ", err)
		}
		dtoRequests[i] = h.requestToDTO(request, nil, settlement)
	}

	c.JSON(http.StatusOK, dto.ServiceRequestListResponse{
		Requests: dtoRequests,
		Total:    len(dtoRequests),
	})
}

// CreateServiceRequest создание заявки с расчётом стоимости
// @Summary Создание заявки
// @Description Проверяет заявку и фиксирует её стоимость на момент создания
// @Tags ServiceRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequestRequest true "Данные заявки"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/service-requests [post]
func (h *APIHandler) CreateServiceRequest(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный формат даты, ожидается YYYY-MM-DD")
		return
	}

	clock, err := time.Parse(timeLayout, request.Time)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный формат времени, ожидается HH:MM")
		return
	}

	service, err := h.Repository.GetServiceByID(request.ServiceID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	var option *ds.SubscriptionOption
	if request.SubscriptionOptionID != nil {
		option, err = h.Repository.GetSubscriptionOptionByID(*request.SubscriptionOptionID)
		if err != nil {
			h.domainErrorResponse(c, err)
			return
		}
		if option.ServiceID != service.ID {
			h.errorResponse(c, http.StatusBadRequest, "Вариант подписки относится к другой услуге")
			return
		}
	}

	// Каталог месячных вариантов для подсказок при ошибке валидации
	catalog, err := h.Repository.GetMonthlyCatalog(service.ID)
	if err != nil {
		logrus.Warn("failed to load monthly catalog: ", err)
	}

	scheduledAt := billing.CombineDateTime(date, clock)
	if err := billing.ValidateRequest(request.SubscriptionType, option, scheduledAt, catalog, time.Now()); err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	// Стоимость фиксируется на момент создания заявки
	var offers []ds.Offer
	if option != nil {
		offers, err = h.Repository.GetOffersForOption(option.ID)
		if err != nil {
			logrus.Warn("failed to load offers for option: ", err)
		}
	}

	price, err := billing.RequestPrice(request.SubscriptionType, service, option, offers, time.Now())
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	serviceRequest := ds.ServiceRequest{
		UserID:               userID,
		ServiceID:            service.ID,
		SubscriptionType:     request.SubscriptionType,
		SubscriptionOptionID: request.SubscriptionOptionID,
		Date:                 date,
		Time:                 clock,
		CarBrand:             request.CarBrand,
		CarModel:             request.CarModel,
		CarColor:             request.CarColor,
		CarNumber:            request.CarNumber,
		RequestPrice:         price,
	}

	err = h.Repository.CreateServiceRequest(&serviceRequest)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	created, err := h.Repository.GetServiceRequestByID(serviceRequest.ID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	settlement := billing.Settle(created.RequestPrice, nil)
	h.successResponse(c, http.StatusCreated, "заявка успешно создана", h.requestToDTO(*created, nil, &settlement))
}

// GetServiceRequest детали заявки
// @Summary Получение заявки
// @Description Возвращает заявку с акциями и разбивкой платежей
// @Tags ServiceRequests
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.ServiceRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/service-requests/{id} [get]
func (h *APIHandler) GetServiceRequest(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	request, err := h.Repository.GetServiceRequestByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	if request.UserID != userID && !userRole.IsAdmin() {
		h.errorResponse(c, http.StatusForbidden, "Заявка принадлежит другому пользователю")
		return
	}

	offers, err := h.Repository.GetOffersForRequest(request.ID)
	if err != nil {
		logrus.Warn("failed to load offers for request: ", err)
	}

	settlement, err := h.settlementFor(*request)
	if err != nil {
		logrus.Error("Error settling request payments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчёта платежей")
		return
	}

	c.JSON(http.StatusOK, h.requestToDTO(*request, offers, settlement))
}

// UpdateServiceRequest изменение расписания и данных автомобиля
// @Summary Изменение заявки
// @Description Меняет дату, время и данные автомобиля. Стоимость заявки не пересчитывается
// @Tags ServiceRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.UpdateServiceRequestRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/service-requests/{id} [put]
func (h *APIHandler) UpdateServiceRequest(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	var request dto.UpdateServiceRequestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetServiceRequestByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	if existing.UserID != userID && !userRole.IsAdmin() {
		h.errorResponse(c, http.StatusForbidden, "Заявка принадлежит другому пользователю")
		return
	}

	var date, clock *time.Time
	newDate := existing.Date
	newClock := existing.Time

	if request.Date != "" {
		parsed, err := time.Parse(dateLayout, request.Date)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат даты, ожидается YYYY-MM-DD")
			return
		}
		date = &parsed
		newDate = parsed
	}
	if request.Time != "" {
		parsed, err := time.Parse(timeLayout, request.Time)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат времени, ожидается HH:MM")
			return
		}
		clock = &parsed
		newClock = parsed
	}

	// Новое время записи должно быть в будущем
	if date != nil || clock != nil {
		scheduledAt := billing.CombineDateTime(newDate, newClock)
		if !scheduledAt.After(time.Now()) {
			h.errorResponse(c, http.StatusBadRequest, "Время записи должно быть в будущем")
			return
		}
	}

	var carBrand, carModel, carColor, carNumber *string
	if request.CarBrand != "" {
		carBrand = &request.CarBrand
	}
	if request.CarModel != "" {
		carModel = &request.CarModel
	}
	if request.CarColor != "" {
		carColor = &request.CarColor
	}
	if request.CarNumber != "" {
		carNumber = &request.CarNumber
	}

	err = h.Repository.UpdateServiceRequestFields(uint(id), existing.UserID, date, clock, carBrand, carModel, carColor, carNumber)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "заявка успешно обновлена", nil)
}

// DeleteServiceRequest удаление заявки
// @Summary Удаление заявки
// @Description Удаляет заявку пользователя
// @Tags ServiceRequests
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/service-requests/{id} [delete]
func (h *APIHandler) DeleteServiceRequest(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	existing, err := h.Repository.GetServiceRequestByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	if existing.UserID != userID && !userRole.IsAdmin() {
		h.errorResponse(c, http.StatusForbidden, "Заявка принадлежит другому пользователю")
		return
	}

	err = h.Repository.DeleteServiceRequest(uint(id), existing.UserID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "заявка успешно удалена", nil)
}
